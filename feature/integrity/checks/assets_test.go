package checks

import (
	"context"
	"testing"

	"roster-manager/core/roster"
	"roster-manager/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func assetDirectory() *roster.Directory {
	dir := roster.NewDirectory()
	dir.Put(&roster.Team{Code: "ATL", Players: []roster.Player{{ID: 1}, {ID: 2}}})
	dir.Put(&roster.Team{Code: "BOS", Players: []roster.Player{{ID: 2}, {ID: 3}}})
	return dir
}

func prefixIs(p string) any {
	return mock.MatchedBy(func(opts minio.ListObjectsOptions) bool { return opts.Prefix == p })
}

func TestCheckAssets(t *testing.T) {
	layout := AssetLayout{RosterObject: "rosters/players_id.json", PlayerImagePrefix: "images/players", LogoPrefix: "logos"}

	mockClient := new(mocks.Client)
	mockClient.On("BucketExists", mock.Anything, "assets").Return(true, nil)
	mockClient.On("StatObject", mock.Anything, "assets", "rosters/players_id.json", mock.Anything).Return(minio.ObjectInfo{}, nil)
	mockClient.On("ListObjects", mock.Anything, "assets", prefixIs("images/players/")).
		Return(listing("images/players/", "images/players/1.png", "images/players/99.png"))
	mockClient.On("ListObjects", mock.Anything, "assets", prefixIs("logos/")).
		Return(listing("logos/NOP.svg"))

	report, err := CheckAssets(context.Background(), mockClient, "assets", layout, assetDirectory(), []string{"ATL", "NOP"})
	require.NoError(t, err)

	assert.True(t, report.RosterPresent)
	assert.Equal(t, []int{2, 3}, report.MissingPlayerImages)
	assert.Equal(t, []string{"99"}, report.UnreferencedImages)
	assert.Equal(t, []string{"ATL"}, report.MissingLogos)
}

func TestCheckAssets_RosterObjectMissing(t *testing.T) {
	mockClient := new(mocks.Client)
	mockClient.On("BucketExists", mock.Anything, "assets").Return(true, nil)
	mockClient.On("StatObject", mock.Anything, "assets", "rosters.json", mock.Anything).
		Return(minio.ObjectInfo{}, minio.ErrorResponse{Code: "NoSuchKey"})
	mockClient.On("ListObjects", mock.Anything, "assets", mock.Anything).Return(emptyListing())

	report, err := CheckAssets(context.Background(), mockClient, "assets",
		AssetLayout{RosterObject: "rosters.json", PlayerImagePrefix: "images", LogoPrefix: "logos"},
		roster.NewDirectory(), nil)
	require.NoError(t, err)
	assert.False(t, report.RosterPresent)
}

func TestCheckAssets_ListError(t *testing.T) {
	mockClient := new(mocks.Client)
	mockClient.On("BucketExists", mock.Anything, "assets").Return(true, nil)

	failing := make(chan minio.ObjectInfo, 1)
	failing <- minio.ObjectInfo{Err: assert.AnError}
	close(failing)
	mockClient.On("ListObjects", mock.Anything, "assets", prefixIs("images/")).Return((<-chan minio.ObjectInfo)(failing))
	mockClient.On("ListObjects", mock.Anything, "assets", prefixIs("logos/")).Return(emptyListing())

	_, err := CheckAssets(context.Background(), mockClient, "assets",
		AssetLayout{PlayerImagePrefix: "images", LogoPrefix: "logos"}, roster.NewDirectory(), nil)
	assert.ErrorIs(t, err, assert.AnError)
}
