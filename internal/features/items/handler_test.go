package items

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	errs "github.com/yucheng-lo/foundbot/pkg/errors"
)

type fakeStore struct {
	items    []LostItem
	listErr  error
	resolved []string
}

func (f *fakeStore) ListOpen(ctx context.Context, limit int64) ([]LostItem, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	if int64(len(f.items)) > limit {
		return f.items[:limit], nil
	}
	return f.items, nil
}

func (f *fakeStore) GetByID(ctx context.Context, id string) (*LostItem, error) {
	for i := range f.items {
		if f.items[i].ID == id {
			return &f.items[i], nil
		}
	}
	return nil, nil
}

func (f *fakeStore) Resolve(ctx context.Context, id string) error {
	for _, item := range f.items {
		if item.ID == id {
			f.resolved = append(f.resolved, id)
			return nil
		}
	}
	return errs.ErrNotFound
}

func testContext(t *testing.T, method, target string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, nil)
	return c, w
}

func TestListReturnsOpenItems(t *testing.T) {
	store := &fakeStore{items: []LostItem{
		{ID: "a", ReporterID: "U1", ReportDate: time.Now()},
		{ID: "b", ReporterID: "U2", ReportDate: time.Now()},
	}}

	c, w := testContext(t, "GET", "/api/v1/items/")
	NewHandler(store).List(c)

	require.Equal(t, 200, w.Code)
	var body struct {
		Data []LostItem `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Data, 2)
}

func TestListReportsStorageFailure(t *testing.T) {
	store := &fakeStore{listErr: errs.ErrStorage}

	c, w := testContext(t, "GET", "/api/v1/items/")
	NewHandler(store).List(c)

	require.Equal(t, 500, w.Code)
}

func TestGetMissingItemIs404(t *testing.T) {
	c, w := testContext(t, "GET", "/api/v1/items/nope")
	c.Params = gin.Params{{Key: "id", Value: "nope"}}
	NewHandler(&fakeStore{}).Get(c)

	require.Equal(t, 404, w.Code)
}

func TestResolve(t *testing.T) {
	store := &fakeStore{items: []LostItem{{ID: "a"}}}

	c, w := testContext(t, "PATCH", "/api/v1/items/a/resolve")
	c.Params = gin.Params{{Key: "id", Value: "a"}}
	NewHandler(store).Resolve(c)

	require.Equal(t, 200, w.Code)
	require.Equal(t, []string{"a"}, store.resolved)

	c, w = testContext(t, "PATCH", "/api/v1/items/b/resolve")
	c.Params = gin.Params{{Key: "id", Value: "b"}}
	NewHandler(store).Resolve(c)

	require.Equal(t, 404, w.Code)
}
