package images

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"

	"roster-manager/core/roster"
	"roster-manager/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const defaultWorkers = 8

// Source provides image bytes. Fetcher is the HTTP implementation.
type Source interface {
	PlayerImage(ctx context.Context, playerID int) (*Image, error)
	TeamLogo(ctx context.Context, team roster.TeamInfo) (*Image, error)
}

// Failure is an image that could not be fetched or stored.
type Failure struct {
	Subject string `json:"subject"`
	Error   string `json:"error"`
}

// Report lists the outcome of an upload run.
type Report struct {
	Uploaded []string  `json:"uploaded"`
	Skipped  []string  `json:"skipped"`
	Failed   []Failure `json:"failed"`
}

// Service downloads images and stores them in the bucket.
type Service struct {
	source       Source
	client       storage.Client
	bucket       string
	playerPrefix string
	logoPrefix   string
	workers      int
	logger       *zap.Logger
}

// NewService creates a new image service using the prefixes in cfg.
func NewService(source Source, client storage.Client, cfg storage.Config, logger *zap.Logger) *Service {
	return &Service{
		source:       source,
		client:       client,
		bucket:       cfg.Bucket,
		playerPrefix: strings.Trim(cfg.PlayerImagePrefix, "/"),
		logoPrefix:   strings.Trim(cfg.LogoPrefix, "/"),
		workers:      defaultWorkers,
		logger:       logger,
	}
}

// SetWorkers sets the number of concurrent downloads.
func (s *Service) SetWorkers(n int) {
	if n > 0 {
		s.workers = n
	}
}

// PlayerKey returns the object key of a player headshot.
func (s *Service) PlayerKey(playerID int) string {
	return s.playerPrefix + "/" + strconv.Itoa(playerID) + ".png"
}

// LogoKey returns the object key of a team logo with extension ext.
func (s *Service) LogoKey(code, ext string) string {
	return s.logoPrefix + "/" + code + "." + ext
}

// PlayerIDs returns the distinct player ids of dir in directory order.
func PlayerIDs(dir *roster.Directory) []int {
	seen := make(map[int]struct{})
	var ids []int
	for _, team := range dir.Teams() {
		for _, p := range team.Players {
			if _, ok := seen[p.ID]; ok {
				continue
			}
			seen[p.ID] = struct{}{}
			ids = append(ids, p.ID)
		}
	}
	return ids
}

// outcome is the per-item result collected by the workers.
type outcome struct {
	key     string
	skipped bool
	err     error
}

// UploadPlayerImages stores the headshot of every id. Existing objects are
// kept unless overwrite is set. Individual failures are reported, not returned.
func (s *Service) UploadPlayerImages(ctx context.Context, ids []int, overwrite bool) (*Report, error) {
	outcomes := make([]outcome, len(ids))
	err := s.run(ctx, len(ids), func(ctx context.Context, i int) {
		key := s.PlayerKey(ids[i])
		outcomes[i].key = key

		if !overwrite {
			exists, err := s.exists(ctx, key)
			if err != nil {
				outcomes[i].err = err
				return
			}
			if exists {
				outcomes[i].skipped = true
				return
			}
		}

		img, err := s.source.PlayerImage(ctx, ids[i])
		if err != nil {
			outcomes[i].err = err
			return
		}
		outcomes[i].err = s.put(ctx, key, img)
	})
	if err != nil {
		return nil, err
	}
	return s.collect("player images", outcomes), nil
}

// UploadTeamLogos stores the logo of every team. The object extension follows
// the source (png or svg), so existence is only checked for the png key.
func (s *Service) UploadTeamLogos(ctx context.Context, teams []roster.TeamInfo, overwrite bool) (*Report, error) {
	outcomes := make([]outcome, len(teams))
	err := s.run(ctx, len(teams), func(ctx context.Context, i int) {
		team := teams[i]
		outcomes[i].key = s.LogoKey(team.Code, "png")

		if !overwrite {
			exists, err := s.exists(ctx, outcomes[i].key)
			if err != nil {
				outcomes[i].err = err
				return
			}
			if exists {
				outcomes[i].skipped = true
				return
			}
		}

		img, err := s.source.TeamLogo(ctx, team)
		if err != nil {
			outcomes[i].err = err
			return
		}
		outcomes[i].key = s.LogoKey(team.Code, img.Ext)
		outcomes[i].err = s.put(ctx, outcomes[i].key, img)
	})
	if err != nil {
		return nil, err
	}
	return s.collect("team logos", outcomes), nil
}

// run calls fn for every index with at most s.workers in flight.
// It only fails when ctx is cancelled.
func (s *Service) run(ctx context.Context, n int, fn func(ctx context.Context, i int)) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	for i := 0; i < n; i++ {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			fn(gctx, i)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

func (s *Service) exists(ctx context.Context, key string) (bool, error) {
	_, err := s.client.StatObject(ctx, s.bucket, key, minio.StatObjectOptions{})
	if err == nil {
		return true, nil
	}
	if storage.IsNotFound(err) {
		return false, nil
	}
	return false, fmt.Errorf("failed to stat %s: %w", key, err)
}

func (s *Service) put(ctx context.Context, key string, img *Image) error {
	_, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(img.Data), int64(len(img.Data)), minio.PutObjectOptions{
		ContentType: contentType(img.Ext),
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", key, err)
	}
	return nil
}

func (s *Service) collect(kind string, outcomes []outcome) *Report {
	report := &Report{Uploaded: []string{}, Skipped: []string{}, Failed: []Failure{}}
	for _, o := range outcomes {
		switch {
		case o.err != nil:
			report.Failed = append(report.Failed, Failure{Subject: o.key, Error: o.err.Error()})
		case o.skipped:
			report.Skipped = append(report.Skipped, o.key)
		default:
			report.Uploaded = append(report.Uploaded, o.key)
		}
	}

	s.logger.Info("Image upload finished",
		zap.String("kind", kind),
		zap.Int("uploaded", len(report.Uploaded)),
		zap.Int("skipped", len(report.Skipped)),
		zap.Int("failed", len(report.Failed)),
	)
	for _, f := range report.Failed {
		s.logger.Warn("Image unavailable", zap.String("subject", f.Subject), zap.String("error", f.Error))
	}
	return report
}

func contentType(ext string) string {
	switch strings.ToLower(ext) {
	case "svg":
		return "image/svg+xml"
	case "jpg", "jpeg":
		return "image/jpeg"
	case "webp":
		return "image/webp"
	default:
		return "image/png"
	}
}
