package gocube

import (
	"context"
	"fmt"
	"log/slog"
)

// FaceRecord is one face of scan data: nine color codes in the face's
// traversal order.
type FaceRecord struct {
	Face   int
	Colors string
}

// ColorSource supplies scan data one face at a time.
type ColorSource interface {
	FetchFace(ctx context.Context, index int) (FaceRecord, error)
}

// Importer applies scan data to a Store. Face index 0 always starts a new
// scan from the canonical arrangement, so the traversal-order mapping of
// every face stays valid.
type Importer struct {
	store     *Store
	player    *Player
	presenter *Presenter
	logger    *slog.Logger
}

// NewImporter creates an importer for store.
func NewImporter(store *Store, opts ...Option) *Importer {
	cfg := newConfig(opts)
	return &Importer{store: store, logger: cfg.logger}
}

// SetPlayer lets the importer refuse scans while a solve is running.
func (im *Importer) SetPlayer(p *Player) {
	im.player = p
}

// SetPresenter makes a scan start also snap the visual cube home.
func (im *Importer) SetPresenter(p *Presenter) {
	im.presenter = p
}

// ImportFace applies one face of scan data. Index 0 resets the store first.
func (im *Importer) ImportFace(index int, colors string) error {
	if im.player != nil && im.player.Running() {
		return ErrSolveInProgress
	}
	face, err := FaceFromIndex(index)
	if err != nil {
		return err
	}
	// Validate before the reset.
	if _, err := ParseFaceColors(colors); err != nil {
		return fmt.Errorf("face %s: %w", face, err)
	}

	if face == FaceU {
		im.store.Reset()
		if im.presenter != nil {
			im.presenter.Reset()
		}
	}
	if err := im.store.ApplyFaceColors(face, colors); err != nil {
		return err
	}
	im.logger.Debug("face imported", "face", face.DisplayName(), "colors", colors)
	return nil
}

// ImportAll fetches and applies faces 0 through 5 in order, one round trip
// each. A failed fetch is logged and returned wrapped in ErrNetwork; faces
// imported before the failure stay applied. Nothing is retried.
func (im *Importer) ImportAll(ctx context.Context, src ColorSource) error {
	for _, face := range Faces {
		index := int(face)
		rec, err := src.FetchFace(ctx, index)
		if err != nil {
			im.logger.Error("fetch face failed", "face", index, "error", err)
			return fmt.Errorf("%w: face %d: %w", ErrNetwork, index, err)
		}
		if rec.Face != index {
			return fmt.Errorf("%w: asked for face %d, got %d", ErrMalformedColorData, index, rec.Face)
		}
		if err := im.ImportFace(index, rec.Colors); err != nil {
			return err
		}
	}
	im.logger.Info("scan complete", "colored", im.store.Colored())
	return nil
}
