package redis

import (
	"context"
	"encoding/json"
	"log"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"github.com/mkravets/localtalent/pkg/profile"
)

// ProfileFeed implements profile.Feed over redis pub/sub. Each account gets
// its own channel, so watchers only see their own row.
type ProfileFeed struct {
	client *goredis.Client
}

func NewProfileFeed(client *goredis.Client) *ProfileFeed {
	return &ProfileFeed{client: client}
}

func channelFor(accountID uuid.UUID) string {
	return "profiles:" + accountID.String()
}

func (f *ProfileFeed) Publish(ctx context.Context, p profile.Profile) error {
	payload, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return f.client.Publish(ctx, channelFor(p.AccountID), payload).Err()
}

// Watch subscribes to the account's channel and forwards decoded rows until
// ctx ends. The subscription is closed when the forwarding goroutine exits,
// so cancelling ctx is the guaranteed release.
func (f *ProfileFeed) Watch(ctx context.Context, accountID uuid.UUID) (<-chan profile.Profile, error) {
	sub := f.client.Subscribe(ctx, channelFor(accountID))
	// Confirm the subscription before handing the channel out.
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return nil, err
	}
	out := make(chan profile.Profile)
	go func() {
		defer close(out)
		defer func() { _ = sub.Close() }()
		msgs := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				var p profile.Profile
				if err := json.Unmarshal([]byte(msg.Payload), &p); err != nil {
					log.Printf("profile feed: bad payload on %s: %v", msg.Channel, err)
					continue
				}
				select {
				case out <- p:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out, nil
}
