package repo

import (
	"context"
	"fmt"
	"time"

	"ogiribattle/src/core/domain"
	"ogiribattle/src/core/ports"
)

// SeedDemo populates a memory repository with the demo data set used
// for local development: three users, twelve prompts with mixed
// statuses, and sample jokes on the newest active prompt.
func SeedDemo(ctx context.Context, r *MemoryRepository) error {
	names := []string{"Alice", "Bob", "Charlie"}
	users := make([]domain.User, 0, len(names))
	for _, name := range names {
		u, err := r.CreateUser(ctx, ports.NewUser{DisplayName: name})
		if err != nil {
			return err
		}
		users = append(users, *u)
	}

	base := time.Now().UTC()
	var active domain.Prompt
	for i := 0; i < 12; i++ {
		status := domain.PromptUpcoming
		switch {
		case i == 0:
			status = domain.PromptActive
		case i < 5:
			status = domain.PromptClosed
		}
		p := r.AddPrompt(domain.Prompt{
			Title:     fmt.Sprintf("お題 %d", i+1),
			Kind:      domain.PromptText,
			Status:    status,
			CreatedAt: base.Add(-time.Duration(i) * time.Hour),
		})
		if i == 0 {
			active = p
		}
	}

	for i := 0; i < 25; i++ {
		author := users[i%len(users)].ID
		if _, err := r.CreateJoke(ctx, ports.NewJoke{
			PromptID: active.ID,
			UserID:   &author,
			Body:     fmt.Sprintf("ボケサンプル %d", i+1),
			Source:   domain.JokeSourceApp,
		}); err != nil {
			return err
		}
	}
	return nil
}
