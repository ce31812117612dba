package checks

import (
	"context"
	"fmt"
	"path"
	"sort"
	"strconv"
	"strings"

	"roster-manager/core/roster"
	"roster-manager/core/storage"

	"github.com/minio/minio-go/v7"
	"golang.org/x/sync/errgroup"
)

// AssetReport lists the stored objects the rosters expect but do not find.
type AssetReport struct {
	RosterObject        string   `json:"roster_object"`
	RosterPresent       bool     `json:"roster_present"`
	MissingPlayerImages []int    `json:"missing_player_images"`
	MissingLogos        []string `json:"missing_logos"`
	// UnreferencedImages are headshots of ids no team lists any more.
	UnreferencedImages []string `json:"unreferenced_images"`
}

// AssetLayout names the keys inspected by CheckAssets.
type AssetLayout struct {
	RosterObject      string
	PlayerImagePrefix string
	LogoPrefix        string
}

// CheckAssets compares the headshots and logos in the bucket with the players
// of dir and the team codes. RosterObject is only checked when set.
func CheckAssets(ctx context.Context, client storage.Client, bucket string, layout AssetLayout, dir *roster.Directory, codes []string) (*AssetReport, error) {
	report := &AssetReport{
		RosterObject:        layout.RosterObject,
		MissingPlayerImages: []int{},
		MissingLogos:        []string{},
		UnreferencedImages:  []string{},
	}

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("bucket %s does not exist", bucket)
	}

	var headshots, logos map[string]bool
	g, gctx := errgroup.WithContext(ctx)

	if layout.RosterObject != "" {
		g.Go(func() error {
			_, err := client.StatObject(gctx, bucket, layout.RosterObject, minio.StatObjectOptions{})
			switch {
			case err == nil:
				report.RosterPresent = true
			case !storage.IsNotFound(err):
				return fmt.Errorf("failed to stat roster object: %w", err)
			}
			return nil
		})
	}
	g.Go(func() error {
		var err error
		headshots, err = listBaseNames(gctx, client, bucket, layout.PlayerImagePrefix)
		return err
	})
	g.Go(func() error {
		var err error
		logos, err = listBaseNames(gctx, client, bucket, layout.LogoPrefix)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	expected := make(map[string]bool)
	for _, team := range dir.Teams() {
		for _, p := range team.Players {
			key := strconv.Itoa(p.ID)
			if expected[key] {
				continue
			}
			expected[key] = true
			if !headshots[key] {
				report.MissingPlayerImages = append(report.MissingPlayerImages, p.ID)
			}
		}
	}

	for name := range headshots {
		if !expected[name] {
			report.UnreferencedImages = append(report.UnreferencedImages, name)
		}
	}
	sort.Strings(report.UnreferencedImages)

	for _, code := range codes {
		if !logos[code] {
			report.MissingLogos = append(report.MissingLogos, code)
		}
	}

	return report, nil
}

// listBaseNames returns the object names under prefix with folder and
// extension stripped ("images/players/12.png" -> "12").
func listBaseNames(ctx context.Context, client storage.Client, bucket, prefix string) (map[string]bool, error) {
	names := make(map[string]bool)
	opts := minio.ListObjectsOptions{Prefix: folderKey(strings.Trim(prefix, "/")), Recursive: true}

	for obj := range client.ListObjects(ctx, bucket, opts) {
		if obj.Err != nil {
			return nil, obj.Err
		}
		if strings.HasSuffix(obj.Key, "/") {
			continue
		}
		base := path.Base(obj.Key)
		names[strings.TrimSuffix(base, path.Ext(base))] = true
	}
	return names, nil
}
