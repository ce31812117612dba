package images

import (
	"context"
	"errors"
	"testing"

	"roster-manager/core/roster"
	"roster-manager/core/storage"
	"roster-manager/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubSource struct {
	players map[int]*Image
	logos   map[string]*Image
}

func (s *stubSource) PlayerImage(_ context.Context, id int) (*Image, error) {
	if img, ok := s.players[id]; ok {
		return img, nil
	}
	return nil, ErrNotAvailable
}

func (s *stubSource) TeamLogo(_ context.Context, team roster.TeamInfo) (*Image, error) {
	if img, ok := s.logos[team.Code]; ok {
		return img, nil
	}
	return nil, ErrNotAvailable
}

var notFound = minio.ErrorResponse{Code: "NoSuchKey", StatusCode: 404}

func testStorageConfig() storage.Config {
	return storage.Config{Bucket: "rosters", PlayerImagePrefix: "images/players/", LogoPrefix: "logos"}
}

func TestService_UploadPlayerImages(t *testing.T) {
	client := new(mocks.Client)
	source := &stubSource{players: map[int]*Image{
		1: {Data: []byte("one"), Ext: "png"},
		2: {Data: []byte("two"), Ext: "png"},
	}}
	svc := NewService(source, client, testStorageConfig(), zap.NewNop())
	svc.SetWorkers(2)

	client.On("StatObject", mock.Anything, "rosters", "images/players/1.png", mock.Anything).Return(minio.ObjectInfo{}, notFound)
	client.On("StatObject", mock.Anything, "rosters", "images/players/2.png", mock.Anything).Return(minio.ObjectInfo{Key: "images/players/2.png"}, nil)
	client.On("StatObject", mock.Anything, "rosters", "images/players/3.png", mock.Anything).Return(minio.ObjectInfo{}, notFound)
	client.On("PutObject", mock.Anything, "rosters", "images/players/1.png", mock.Anything, int64(3),
		mock.MatchedBy(func(o minio.PutObjectOptions) bool { return o.ContentType == "image/png" })).
		Return(minio.UploadInfo{}, nil)

	report, err := svc.UploadPlayerImages(context.Background(), []int{1, 2, 3}, false)
	require.NoError(t, err)

	assert.Equal(t, []string{"images/players/1.png"}, report.Uploaded)
	assert.Equal(t, []string{"images/players/2.png"}, report.Skipped)
	require.Len(t, report.Failed, 1)
	assert.Equal(t, "images/players/3.png", report.Failed[0].Subject)
	client.AssertExpectations(t)
}

func TestService_UploadPlayerImages_Overwrite(t *testing.T) {
	client := new(mocks.Client)
	source := &stubSource{players: map[int]*Image{1: {Data: []byte("one"), Ext: "png"}}}
	svc := NewService(source, client, testStorageConfig(), zap.NewNop())

	client.On("PutObject", mock.Anything, "rosters", "images/players/1.png", mock.Anything, int64(3), mock.Anything).
		Return(minio.UploadInfo{}, errors.New("access denied"))

	report, err := svc.UploadPlayerImages(context.Background(), []int{1}, true)
	require.NoError(t, err)
	require.Len(t, report.Failed, 1)
	assert.Contains(t, report.Failed[0].Error, "access denied")
	client.AssertNotCalled(t, "StatObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestService_UploadTeamLogos(t *testing.T) {
	client := new(mocks.Client)
	source := &stubSource{logos: map[string]*Image{"NOP": {Data: []byte("<svg/>"), Ext: "svg"}}}
	svc := NewService(source, client, testStorageConfig(), zap.NewNop())

	client.On("StatObject", mock.Anything, "rosters", "logos/NOP.png", mock.Anything).Return(minio.ObjectInfo{}, notFound)
	client.On("PutObject", mock.Anything, "rosters", "logos/NOP.svg", mock.Anything, int64(6),
		mock.MatchedBy(func(o minio.PutObjectOptions) bool { return o.ContentType == "image/svg+xml" })).
		Return(minio.UploadInfo{}, nil)

	report, err := svc.UploadTeamLogos(context.Background(), []roster.TeamInfo{{Code: "NOP", ExternalID: 1610612740}}, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"logos/NOP.svg"}, report.Uploaded)
	client.AssertExpectations(t)
}

func TestService_StatErrorIsFailure(t *testing.T) {
	client := new(mocks.Client)
	svc := NewService(&stubSource{}, client, testStorageConfig(), zap.NewNop())

	client.On("StatObject", mock.Anything, "rosters", "images/players/9.png", mock.Anything).Return(minio.ObjectInfo{}, errors.New("connection reset"))

	report, err := svc.UploadPlayerImages(context.Background(), []int{9}, false)
	require.NoError(t, err)
	require.Len(t, report.Failed, 1)
	assert.Contains(t, report.Failed[0].Error, "failed to stat")
}

func TestPlayerIDs(t *testing.T) {
	dir := roster.NewDirectory()
	dir.Put(&roster.Team{Code: "A", Players: []roster.Player{{ID: 3}, {ID: 1}}})
	dir.Put(&roster.Team{Code: "B", Players: []roster.Player{{ID: 1}, {ID: 2}}})

	assert.Equal(t, []int{3, 1, 2}, PlayerIDs(dir))
}
