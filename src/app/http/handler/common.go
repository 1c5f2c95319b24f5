// Package handler contains HTTP handlers for the API.
// Handlers are responsible for:
// - Parsing and validating HTTP requests
// - Calling use case methods
// - Converting results to HTTP responses
package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"ogiribattle/src/core/domain"
	"ogiribattle/src/core/ports"
)

// Shared serializers keep the JSON shapes identical across endpoints.

func userJSON(u domain.User) gin.H {
	return gin.H{
		"id":           u.ID,
		"display_name": u.DisplayName,
		"handle":       u.Handle,
		"avatar_url":   u.AvatarURL,
		"created_at":   u.CreatedAt,
	}
}

func promptJSON(p domain.Prompt) gin.H {
	return gin.H{
		"id":         p.ID,
		"title":      p.Title,
		"body":       p.Body,
		"kind":       p.Kind,
		"image_url":  p.ImageURL,
		"status":     p.Status,
		"tags":       p.Tags,
		"created_at": p.CreatedAt,
	}
}

func jokeJSON(j domain.Joke) gin.H {
	return gin.H{
		"id":         j.ID,
		"prompt_id":  j.PromptID,
		"user_id":    j.UserID,
		"body":       j.Body,
		"tags":       j.Tags,
		"source":     j.Source,
		"created_at": j.CreatedAt,
	}
}

func voteJSON(v domain.Vote) gin.H {
	return gin.H{
		"id":            v.ID,
		"joke_id":       v.JokeID,
		"voter_user_id": v.VoterUserID,
		"guest_name":    v.GuestName,
		"type":          v.Type,
		"weight":        v.Weight,
		"created_at":    v.CreatedAt,
	}
}

func commentJSON(c domain.Comment) gin.H {
	return gin.H{
		"id":         c.ID,
		"joke_id":    c.JokeID,
		"user_id":    c.UserID,
		"guest_name": c.GuestName,
		"body":       c.Body,
		"created_at": c.CreatedAt,
	}
}

func jokeWithScoreJSON(j ports.JokeWithScore) gin.H {
	out := jokeJSON(j.Joke)
	out["total_score"] = j.TotalScore
	out["vote_count"] = j.VoteCount
	return out
}

// parseBoolQuery reads a boolean query parameter. Absent or
// unparseable values count as false.
func parseBoolQuery(c *gin.Context, name string) bool {
	v, err := strconv.ParseBool(c.Query(name))
	return err == nil && v
}

// parseLimitQuery reads a positive integer query parameter, returning
// fallback when absent or invalid.
func parseLimitQuery(c *gin.Context, name string, fallback int) int {
	v, err := strconv.Atoi(c.Query(name))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}
