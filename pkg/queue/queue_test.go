package queue_test

import (
	"context"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"github.com/chrisgzf/cadet/pkg/queue"
)

// TestEnvelopeHeader 验证信封头部的默认值与选项.
func TestEnvelopeHeader(t *testing.T) {
	msg, err := queue.NewWatermillMessage(queue.TopicGroupUpserted,
		queue.GroupUpsertedPayload{GroupID: 3, Name: "cs1101s", Created: true},
		queue.WithProducer("cadet"),
		queue.WithTraceID("trace-abc"),
	)
	if err != nil {
		t.Fatalf("build message: %v", err)
	}

	if msg.UUID == "" {
		t.Error("message UUID must be set")
	}

	if got := msg.Metadata.Get("topic"); got != queue.TopicGroupUpserted {
		t.Errorf("topic metadata = %q, want %q", got, queue.TopicGroupUpserted)
	}

	env, err := queue.ParseWatermillMessage[queue.GroupUpsertedPayload](msg)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if env.Header.Producer != "cadet" || env.Header.TraceID != "trace-abc" {
		t.Errorf("header options not applied: %+v", env.Header)
	}

	if env.Header.Version != queue.PayloadVersionV1 {
		t.Errorf("version = %q, want %q", env.Header.Version, queue.PayloadVersionV1)
	}

	if env.Header.OccurredAt.IsZero() {
		t.Error("occurred_at must be populated")
	}

	if env.Payload.Name != "cs1101s" || !env.Payload.Created {
		t.Errorf("payload lost in round trip: %+v", env.Payload)
	}
}

// TestPublishMaterialStored 验证事件经 pubsub 往返后仍可解析.
func TestPublishMaterialStored(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	pubsub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	defer pubsub.Close()

	msgs, err := pubsub.Subscribe(ctx, queue.TopicMaterialStored)
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}

	want := queue.MaterialStoredPayload{
		MaterialID: 42,
		Title:      "week03.pdf",
		Uploader:   "staff@example.com",
		Object: queue.ObjectRef{
			Bucket:    "cadet-content",
			ObjectKey: "materials/42/week03.pdf",
			Size:      1024,
		},
	}

	if err := queue.PublishMaterialStored(pubsub, want, queue.WithProducer("cadet")); err != nil {
		t.Fatalf("publish: %v", err)
	}

	select {
	case msg := <-msgs:
		env, err := queue.ParseMaterialStored(msg)
		if err != nil {
			t.Fatalf("parse: %v", err)
		}

		msg.Ack()

		if env.Payload != want {
			t.Errorf("payload = %+v, want %+v", env.Payload, want)
		}

		if env.Header.Topic != queue.TopicMaterialStored {
			t.Errorf("header topic = %q", env.Header.Topic)
		}
	case <-ctx.Done():
		t.Fatal("timed out waiting for event")
	}
}
