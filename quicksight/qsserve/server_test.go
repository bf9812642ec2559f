package qsserve

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acksell/qsight/quicksight/qsapi"
)

func runServer(t *testing.T, s *Server) <-chan error {
	t.Helper()
	errCh := make(chan error, 1)
	go func() { errCh <- s.Run() }()
	return errCh
}

func waitRun(t *testing.T, errCh <-chan error) error {
	t.Helper()
	select {
	case err := <-errCh:
		return err
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return")
		return nil
	}
}

func assertStoreClosed(t *testing.T, s *Server) {
	t.Helper()
	_, err := s.store.ListGroups(context.Background(), &qsapi.ListGroupsInput{
		AwsAccountId: aws.String(testAccount),
		Namespace:    aws.String("default"),
	})
	assert.ErrorIs(t, err, badger.ErrDBClosed)
}

func TestServer_RunReturnsAfterShutdown(t *testing.T) {
	s, err := NewServer(ServerConfig{Port: 0, Region: "eu-west-1"})
	require.NoError(t, err)

	errCh := runServer(t, s)
	require.NoError(t, s.Shutdown(context.Background()))

	assert.NoError(t, waitRun(t, errCh))
	assertStoreClosed(t, s)
}

func TestServer_RunClosesStoreWhenListenFails(t *testing.T) {
	ln, err := net.Listen("tcp", ":0")
	require.NoError(t, err)
	t.Cleanup(func() { ln.Close() })

	s, err := NewServer(ServerConfig{Port: ln.Addr().(*net.TCPAddr).Port, Region: "eu-west-1"})
	require.NoError(t, err)

	err = waitRun(t, runServer(t, s))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "address already in use")
	assertStoreClosed(t, s)
}
