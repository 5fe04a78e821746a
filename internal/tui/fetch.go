package tui

import (
	"context"
	"fmt"

	"scaletrailhq/scaletrail/internal/catalog"

	"golang.org/x/sync/errgroup"
)

// fetchCatalogData fetches the instance type and image listings concurrently.
func fetchCatalogData(ctx context.Context, client CatalogClient, types *catalog.TypesResponse, images *catalog.ImagesResponse) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		*types, err = client.ListTypes(ctx)
		if err != nil {
			return fmt.Errorf("failed to list instance types: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		*images, err = client.ListImages(ctx)
		if err != nil {
			return fmt.Errorf("failed to list images: %w", err)
		}
		return nil
	})

	return g.Wait()
}
