package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/wevraa-admin/internal/client/services"
)

func (a *App) Resources() []string {
	return a.svc.ResourceNames()
}

func (a *App) resource(name string) (services.Browsable, error) {
	r, ok := a.svc.Browsables()[name]
	if !ok {
		return nil, fmt.Errorf("unknown resource %q", name)
	}
	return r, nil
}

func (a *App) List(ctx context.Context, resource string) error {
	r, err := a.resource(resource)
	if err != nil {
		return err
	}
	items, err := r.Browse(ctx)
	if err != nil {
		return err
	}
	return a.printJSON(items)
}

func (a *App) Get(ctx context.Context, resource, id string) error {
	r, err := a.resource(resource)
	if err != nil {
		return err
	}
	item, err := r.Fetch(ctx, id)
	if err != nil {
		return err
	}
	return a.printJSON(item)
}

func (a *App) Delete(ctx context.Context, resource, id string) error {
	r, err := a.resource(resource)
	if err != nil {
		return err
	}
	if err := r.Remove(ctx, id); err != nil {
		return err
	}
	printlnFn("Deleted", resource, id)
	return nil
}

// Upload sends a local image to the backend and prints the public URL.
func (a *App) Upload(ctx context.Context, path string) error {
	f, err := services.ReadFile(path)
	if err != nil {
		return err
	}
	u, err := a.svc.Upload.Image(ctx, f)
	if err != nil {
		return err
	}
	printlnFn(u)
	return nil
}

func (a *App) ReviewStats(ctx context.Context) error {
	stats, err := a.svc.Reviews.Stats(ctx)
	if err != nil {
		return err
	}
	return a.printJSON(stats)
}

func (a *App) PublishReview(ctx context.Context, id string) error {
	r, err := a.svc.Reviews.Publish(ctx, id)
	if err != nil {
		return err
	}
	return a.printJSON(r)
}

func (a *App) HideReview(ctx context.Context, id string) error {
	r, err := a.svc.Reviews.Hide(ctx, id)
	if err != nil {
		return err
	}
	return a.printJSON(r)
}
