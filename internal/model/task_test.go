package model

import (
	"testing"
	"time"
)

func TestLinkTask_GetDisplayTitle(t *testing.T) {
	tests := []struct {
		outputPath string
		url        string
		expected   string
	}{
		{"/tmp/video/My Clip.mp4", "https://youtu.be/a", "My Clip"},
		{`C:\Users\me\audio\Song.mp3`, "https://youtu.be/b", "Song"},
		{"", "https://www.youtube.com/watch?v=123", "https://www.youtube.com/watch?v=123"},
	}

	for _, test := range tests {
		task := &LinkTask{OutputPath: test.outputPath, URL: test.url}
		result := task.GetDisplayTitle()
		if result != test.expected {
			t.Errorf("GetDisplayTitle() with output='%s', url='%s' = '%s', expected '%s'",
				test.outputPath, test.url, result, test.expected)
		}
	}
}

func TestLinkTask_Elapsed(t *testing.T) {
	task := NewLinkTask("https://youtu.be/abc")
	if task.Status != LinkStatusPending {
		t.Fatalf("Expected new task to be pending, got %s", task.Status)
	}
	if task.Elapsed() != 0 {
		t.Errorf("Expected zero elapsed for unstarted task, got %v", task.Elapsed())
	}

	now := time.Now()
	task.StartedAt = now
	task.FinishedAt = now.Add(3 * time.Second)
	if task.Elapsed() != 3*time.Second {
		t.Errorf("Expected 3s elapsed, got %v", task.Elapsed())
	}
}
