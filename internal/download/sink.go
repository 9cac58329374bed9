package download

import "github.com/ytget/yt-batch/internal/model"

// FuncSink adapts plain functions to Sink. Nil fields are skipped.
type FuncSink struct {
	Progress func(text string)
	Finished func(text string)
	Error    func(text string)
	Done     func()
}

func (f FuncSink) OnProgress(text string) {
	if f.Progress != nil {
		f.Progress(text)
	}
}

func (f FuncSink) OnFinished(text string) {
	if f.Finished != nil {
		f.Finished(text)
	}
}

func (f FuncSink) OnError(text string) {
	if f.Error != nil {
		f.Error(text)
	}
}

func (f FuncSink) OnDone() {
	if f.Done != nil {
		f.Done()
	}
}

// ChannelSink delivers notifications as model.Event values. The channel is
// closed after OnDone, so a ChannelSink serves a single batch.
type ChannelSink struct {
	events chan model.Event
}

// NewChannelSink creates a sink and returns the channel it feeds
func NewChannelSink(buffer int) (*ChannelSink, <-chan model.Event) {
	events := make(chan model.Event, buffer)
	return &ChannelSink{events: events}, events
}

func (c *ChannelSink) OnProgress(text string) {
	c.events <- model.Event{Kind: model.EventProgress, Text: text}
}

func (c *ChannelSink) OnFinished(text string) {
	c.events <- model.Event{Kind: model.EventFinished, Text: text}
}

func (c *ChannelSink) OnError(text string) {
	c.events <- model.Event{Kind: model.EventError, Text: text}
}

func (c *ChannelSink) OnDone() {
	c.events <- model.Event{Kind: model.EventDone}
	close(c.events)
}
