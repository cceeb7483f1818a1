package pagination

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestBuildMiddlePage(t *testing.T) {
	p := &PagedResult{
		Total:       23,
		PerPage:     10,
		CurrentPage: 2,
		LastPage:    3,
		Path:        "/api/products",
	}

	pg := Build(p, "")

	assert.Equal(t, int64(23), pg.Total)
	assert.Equal(t, 10, pg.PerPage)
	assert.Equal(t, 2, pg.CurrentPage)
	assert.Equal(t, 3, pg.LastPage)

	require.NotNil(t, pg.NextPageURL)
	assert.Equal(t, "/api/products?page=3", *pg.NextPageURL)

	require.NotNil(t, pg.PrevPageURL)
	assert.Equal(t, "/api/products?page=1", *pg.PrevPageURL)
}

func TestBuildBoundaryPages(t *testing.T) {
	first := Build(&PagedResult{
		Total: 23, PerPage: 10, CurrentPage: 1, LastPage: 3, Path: "/api/products",
	}, "")

	assert.Nil(t, first.PrevPageURL)
	require.NotNil(t, first.NextPageURL)
	assert.Equal(t, "/api/products?page=2", *first.NextPageURL)

	last := Build(&PagedResult{
		Total: 23, PerPage: 10, CurrentPage: 3, LastPage: 3, Path: "/api/products",
	}, "")

	assert.Nil(t, last.NextPageURL)
	require.NotNil(t, last.PrevPageURL)
	assert.Equal(t, "/api/products?page=2", *last.PrevPageURL)
}

func TestBuildSinglePage(t *testing.T) {
	pg := Build(&PagedResult{
		Total: 4, PerPage: 10, CurrentPage: 1, LastPage: 1, Path: "/api/reviews",
	}, "")

	assert.Nil(t, pg.NextPageURL)
	assert.Nil(t, pg.PrevPageURL)
}

func TestBuildResourceName(t *testing.T) {
	p := &PagedResult{Total: 1, PerPage: 10, CurrentPage: 1, LastPage: 1, Path: "/api/products"}

	assert.Equal(t, "products", Build(p, "").URL.PageName)
	assert.Equal(t, "items", Build(p, "items").URL.PageName)
	assert.Equal(t, "/api/products", Build(p, "").URL.Path)

	trailing := &PagedResult{Total: 1, PerPage: 10, CurrentPage: 1, LastPage: 1, Path: "/api/customers/"}
	assert.Equal(t, "customers", Build(trailing, "").URL.PageName)
}

type widget struct {
	ID   uint `gorm:"primaryKey;autoIncrement"`
	Name string
}

func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	conn, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())))
	require.NoError(t, err)
	require.NoError(t, conn.AutoMigrate(widget{}))

	return conn
}

func TestPaginate(t *testing.T) {
	conn := testDB(t)

	for i := 1; i <= 23; i++ {
		require.NoError(t, conn.Create(&widget{Name: fmt.Sprintf("widget-%02d", i)}).Error)
	}

	var out []widget

	paged, err := Paginate(conn.Model(&widget{}), "/api/widgets", 1, 10, &out)
	require.NoError(t, err)

	assert.Equal(t, int64(23), paged.Total)
	assert.Equal(t, 3, paged.LastPage)
	assert.Equal(t, 1, paged.CurrentPage)
	assert.Len(t, out, 10)

	out = nil
	paged, err = Paginate(conn.Model(&widget{}), "/api/widgets", 3, 10, &out)
	require.NoError(t, err)

	assert.Equal(t, 3, paged.CurrentPage)
	assert.Len(t, out, 3)
}

func TestPaginateClampsPage(t *testing.T) {
	conn := testDB(t)

	require.NoError(t, conn.Create(&widget{Name: "only"}).Error)

	var out []widget

	paged, err := Paginate(conn.Model(&widget{}), "/api/widgets", 0, 10, &out)
	require.NoError(t, err)
	assert.Equal(t, 1, paged.CurrentPage)
	assert.Len(t, out, 1)
}

func TestPaginateEmptyTable(t *testing.T) {
	conn := testDB(t)

	var out []widget

	paged, err := Paginate(conn.Model(&widget{}), "/api/widgets", 1, 10, &out)
	require.NoError(t, err)

	assert.Equal(t, int64(0), paged.Total)
	assert.Equal(t, 1, paged.LastPage)
	assert.Empty(t, out)
}

func TestPaginatePastEnd(t *testing.T) {
	conn := testDB(t)

	for i := 0; i < 5; i++ {
		require.NoError(t, conn.Create(&widget{Name: "w"}).Error)
	}

	var out []widget

	paged, err := Paginate(conn.Model(&widget{}), "/api/widgets", 9, 10, &out)
	require.NoError(t, err)

	assert.Equal(t, 9, paged.CurrentPage)
	assert.Equal(t, 1, paged.LastPage)
	assert.Empty(t, out)
}
