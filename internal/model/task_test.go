package model

import (
	"image"
	"testing"
	"time"
)

func TestSearchTask_Thumbnail(t *testing.T) {
	task := &SearchTask{}
	if _, ok := task.Thumbnail(1); ok {
		t.Error("Expected no thumbnail on a task without thumbnails")
	}

	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	task.Thumbnails = map[int]image.Image{1: img, 2: nil}

	got, ok := task.Thumbnail(1)
	if !ok || got != img {
		t.Error("Expected thumbnail for recipe 1")
	}

	if _, ok := task.Thumbnail(2); ok {
		t.Error("Expected nil entry to count as missing")
	}

	if _, ok := task.Thumbnail(3); ok {
		t.Error("Expected unknown recipe to have no thumbnail")
	}
}

func TestSearchTask_Duration(t *testing.T) {
	start := time.Now()
	task := &SearchTask{StartedAt: start}

	if task.Duration() != 0 {
		t.Errorf("Expected zero duration for running task, got %v", task.Duration())
	}

	task.FinishedAt = start.Add(1500 * time.Millisecond)
	if task.Duration() != 1500*time.Millisecond {
		t.Errorf("Expected 1.5s duration, got %v", task.Duration())
	}
}
