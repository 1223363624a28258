package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/yukikurage/taskboard-api/internal/repository"
)

var ErrOwnerRequired = errors.New("owner account id is required")

// BackfillResult reports how many legacy rows received an owner
type BackfillResult struct {
	Workspaces int64
	Tags       int64
}

// BackfillOwner assigns ownerID to every workspace and tag stored without one
func BackfillOwner(ctx context.Context, workspaces repository.WorkspaceRepository, tags repository.TagRepository, ownerID string) (*BackfillResult, error) {
	if ownerID == "" {
		return nil, ErrOwnerRequired
	}

	ws, err := workspaces.AssignMissingOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to backfill workspaces: %w", err)
	}

	tg, err := tags.AssignMissingOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to backfill tags: %w", err)
	}

	return &BackfillResult{Workspaces: ws, Tags: tg}, nil
}
