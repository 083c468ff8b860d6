package controller

import (
	"context"

	"github.com/loomworks/loom/pkg/types"
)

// Typed convenience wrappers for the most commonly handled kinds. Each
// forwards to the generic primitives and narrows the result type; a nil
// result still means not found.

func (c *Client) CreateProject(ctx context.Context, p *types.Project) (*types.Project, error) {
	obj, err := c.Create(ctx, p)
	if err != nil {
		return nil, err
	}
	return obj.(*types.Project), nil
}

func (c *Client) GetProject(ctx context.Context, f types.Filters) (*types.Project, error) {
	obj, err := c.Get(ctx, types.KindProject, f)
	if err != nil || obj == nil {
		return nil, err
	}
	return obj.(*types.Project), nil
}

func (c *Client) CreateModel(ctx context.Context, m *types.Model) (*types.Model, error) {
	obj, err := c.Create(ctx, m)
	if err != nil {
		return nil, err
	}
	return obj.(*types.Model), nil
}

func (c *Client) GetModel(ctx context.Context, f types.Filters) (*types.Model, error) {
	obj, err := c.Get(ctx, types.KindModel, f)
	if err != nil || obj == nil {
		return nil, err
	}
	return obj.(*types.Model), nil
}

func (c *Client) CreateWorkflow(ctx context.Context, w *types.Workflow) (*types.Workflow, error) {
	obj, err := c.Create(ctx, w)
	if err != nil {
		return nil, err
	}
	return obj.(*types.Workflow), nil
}

func (c *Client) GetWorkflow(ctx context.Context, f types.Filters) (*types.Workflow, error) {
	obj, err := c.Get(ctx, types.KindWorkflow, f)
	if err != nil || obj == nil {
		return nil, err
	}
	return obj.(*types.Workflow), nil
}

func (c *Client) CreateSchedule(ctx context.Context, s *types.Schedule) (*types.Schedule, error) {
	obj, err := c.Create(ctx, s)
	if err != nil {
		return nil, err
	}
	return obj.(*types.Schedule), nil
}

func (c *Client) GetSchedule(ctx context.Context, f types.Filters) (*types.Schedule, error) {
	obj, err := c.Get(ctx, types.KindSchedule, f)
	if err != nil || obj == nil {
		return nil, err
	}
	return obj.(*types.Schedule), nil
}

func (c *Client) CreateRun(ctx context.Context, r *types.Run) (*types.Run, error) {
	obj, err := c.Create(ctx, r)
	if err != nil {
		return nil, err
	}
	return obj.(*types.Run), nil
}

func (c *Client) GetRun(ctx context.Context, f types.Filters) (*types.Run, error) {
	obj, err := c.Get(ctx, types.KindRun, f)
	if err != nil || obj == nil {
		return nil, err
	}
	return obj.(*types.Run), nil
}

func (c *Client) CreateSession(ctx context.Context, s *types.Session) (*types.Session, error) {
	obj, err := c.Create(ctx, s)
	if err != nil {
		return nil, err
	}
	return obj.(*types.Session), nil
}

func (c *Client) GetSession(ctx context.Context, f types.Filters) (*types.Session, error) {
	obj, err := c.Get(ctx, types.KindSession, f)
	if err != nil || obj == nil {
		return nil, err
	}
	return obj.(*types.Session), nil
}

func (c *Client) CreateUser(ctx context.Context, u *types.User) (*types.User, error) {
	obj, err := c.Create(ctx, u)
	if err != nil {
		return nil, err
	}
	return obj.(*types.User), nil
}

func (c *Client) GetUser(ctx context.Context, f types.Filters) (*types.User, error) {
	obj, err := c.Get(ctx, types.KindUser, f)
	if err != nil || obj == nil {
		return nil, err
	}
	return obj.(*types.User), nil
}
