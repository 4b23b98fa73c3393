package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	assignmentusecases "github.com/cartonworks/stockline/internal/application/assignment/usecases"
	"github.com/cartonworks/stockline/internal/application/carton/dto"
	"github.com/cartonworks/stockline/internal/application/carton/usecases"
	"github.com/cartonworks/stockline/internal/interfaces/http/handlers/testutil"
	"github.com/cartonworks/stockline/internal/shared/errors"
)

type mockCreateCartonUC struct {
	got    usecases.CreateCartonCommand
	result *dto.CartonDTO
	err    error
}

func (m *mockCreateCartonUC) Execute(ctx context.Context, cmd usecases.CreateCartonCommand) (*dto.CartonDTO, error) {
	m.got = cmd
	return m.result, m.err
}

type mockUpdateCartonUC struct {
	got    usecases.UpdateCartonCommand
	result *dto.CartonDTO
	err    error
}

func (m *mockUpdateCartonUC) Execute(ctx context.Context, cmd usecases.UpdateCartonCommand) (*dto.CartonDTO, error) {
	m.got = cmd
	return m.result, m.err
}

type mockGetCartonUC struct {
	result *dto.CartonDTO
	err    error
}

func (m *mockGetCartonUC) Execute(ctx context.Context, query usecases.GetCartonQuery) (*dto.CartonDTO, error) {
	return m.result, m.err
}

type mockListCartonsUC struct {
	got    usecases.ListCartonsQuery
	result *usecases.ListCartonsResult
	err    error
}

func (m *mockListCartonsUC) Execute(ctx context.Context, query usecases.ListCartonsQuery) (*usecases.ListCartonsResult, error) {
	m.got = query
	return m.result, m.err
}

type mockDeleteCartonUC struct {
	err error
}

func (m *mockDeleteCartonUC) Execute(ctx context.Context, cmd usecases.DeleteCartonCommand) error {
	return m.err
}

type mockImportCartonsUC struct {
	gotBody      []byte
	gotCreatedBy uint
	result       *usecases.ImportCartonsResult
	err          error
}

func (m *mockImportCartonsUC) Execute(ctx context.Context, cmd usecases.ImportCartonsCommand) (*usecases.ImportCartonsResult, error) {
	m.gotBody, _ = io.ReadAll(cmd.File)
	m.gotCreatedBy = cmd.CreatedBy
	return m.result, m.err
}

type mockExportCartonsUC struct {
	got usecases.ListCartonsQuery
}

func (m *mockExportCartonsUC) Execute(ctx context.Context, w io.Writer, query usecases.ListCartonsQuery) error {
	m.got = query
	_, err := w.Write([]byte("PK"))
	return err
}

type mockCompatibleCartonsUC struct {
	got    assignmentusecases.CompatibleCartonsQuery
	result *assignmentusecases.CompatibleCartonsResult
	err    error
}

func (m *mockCompatibleCartonsUC) Execute(ctx context.Context, query assignmentusecases.CompatibleCartonsQuery) (*assignmentusecases.CompatibleCartonsResult, error) {
	m.got = query
	return m.result, m.err
}

type cartonMocks struct {
	create     *mockCreateCartonUC
	update     *mockUpdateCartonUC
	get        *mockGetCartonUC
	list       *mockListCartonsUC
	delete     *mockDeleteCartonUC
	importer   *mockImportCartonsUC
	export     *mockExportCartonsUC
	compatible *mockCompatibleCartonsUC
	history    *mockListAssignmentsUC
}

func newCartonHandler() (*CartonHandler, *cartonMocks) {
	m := &cartonMocks{
		create:     &mockCreateCartonUC{},
		update:     &mockUpdateCartonUC{},
		get:        &mockGetCartonUC{},
		list:       &mockListCartonsUC{},
		delete:     &mockDeleteCartonUC{},
		importer:   &mockImportCartonsUC{},
		export:     &mockExportCartonsUC{},
		compatible: &mockCompatibleCartonsUC{},
		history:    &mockListAssignmentsUC{},
	}
	h := NewCartonHandler(m.create, m.update, m.get, m.list, m.delete, m.importer, m.export,
		m.compatible, m.history, testutil.NewMockLogger())
	return h, m
}

func TestCreateCarton(t *testing.T) {
	h, m := newCartonHandler()
	m.create.result = &dto.CartonDTO{ID: "ctn_1", Name: "RSC 300"}

	c, w := testutil.NewTestContext(http.MethodPost, "/api/cartons", CreateCartonRequest{
		Name: "RSC 300", CompanyName: "Acme", Length: 300, Breadth: 200, Height: 150, TotalQuantity: 500,
	})
	testutil.SetAuthContext(c, 4)

	h.CreateCarton(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, uint(4), m.create.got.CreatedBy)
	assert.Equal(t, 500, m.create.got.TotalQuantity)
}

func TestCreateCarton_InvalidDimensions(t *testing.T) {
	h, _ := newCartonHandler()

	c, w := testutil.NewTestContext(http.MethodPost, "/api/cartons", map[string]interface{}{
		"name": "RSC", "length": 0, "breadth": 10, "height": 10,
	})
	testutil.SetAuthContext(c, 4)

	h.CreateCarton(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, string(errors.ErrorTypeValidation), resp.Error.Type)
}

func TestUpdateCarton_OptionalTotal(t *testing.T) {
	h, m := newCartonHandler()
	m.update.result = &dto.CartonDTO{ID: "ctn_1"}

	c, w := testutil.NewTestContext(http.MethodPut, "/api/cartons/ctn_1", map[string]interface{}{
		"name": "RSC", "length": 10, "breadth": 10, "height": 10,
	})
	testutil.SetURLParam(c, "id", "ctn_1")

	h.UpdateCarton(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ctn_1", m.update.got.SID)
	assert.Nil(t, m.update.got.TotalQuantity)
}

func TestGetCarton_NotFound(t *testing.T) {
	h, m := newCartonHandler()
	m.get.err = errors.NewNotFoundError("carton not found")

	c, w := testutil.NewTestContext(http.MethodGet, "/api/cartons/ctn_x", nil)
	testutil.SetURLParam(c, "id", "ctn_x")

	h.GetCarton(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListCartons_Filters(t *testing.T) {
	h, m := newCartonHandler()
	m.list.result = &usecases.ListCartonsResult{
		Cartons:    []*dto.CartonDTO{{ID: "ctn_1"}},
		TotalCount: 1, Page: 2, PageSize: 10,
	}

	c, w := testutil.NewTestContext(http.MethodGet, "/api/cartons", nil)
	testutil.SetQueryParams(c, map[string]string{
		"search": " rsc ", "company_name": "Acme", "available": "true", "page": "2", "page_size": "10",
	})

	h.ListCartons(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "rsc", m.list.got.Search)
	assert.Equal(t, "Acme", m.list.got.CompanyName)
	assert.True(t, m.list.got.OnlyAvailable)
	assert.Equal(t, 2, m.list.got.Page)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	var list testutil.ListData
	require.NoError(t, json.Unmarshal(resp.Data, &list))
	assert.Equal(t, int64(1), list.Total)
}

func TestDeleteCarton(t *testing.T) {
	h, _ := newCartonHandler()
	c, w := testutil.NewTestContext(http.MethodDelete, "/api/cartons/ctn_1", nil)
	testutil.SetURLParam(c, "id", "ctn_1")

	h.DeleteCarton(c)
	c.Writer.WriteHeaderNow()

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestImportCartons(t *testing.T) {
	h, m := newCartonHandler()
	m.importer.result = &usecases.ImportCartonsResult{Imported: 3}

	c, w := testutil.NewMultipartContext(http.MethodPost, "/api/cartons/import", "file", "stock.XLSX", []byte("workbook"))
	testutil.SetAuthContext(c, 2)

	h.ImportCartons(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, []byte("workbook"), m.importer.gotBody)
	assert.Equal(t, uint(2), m.importer.gotCreatedBy)
}

func TestImportCartons_RejectsOtherFormats(t *testing.T) {
	h, _ := newCartonHandler()

	c, w := testutil.NewMultipartContext(http.MethodPost, "/api/cartons/import", "file", "stock.csv", []byte("a,b"))
	testutil.SetAuthContext(c, 2)
	h.ImportCartons(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	c, w = testutil.NewTestContext(http.MethodPost, "/api/cartons/import", nil)
	testutil.SetAuthContext(c, 2)
	h.ImportCartons(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExportCartons_UsesListFilters(t *testing.T) {
	h, m := newCartonHandler()
	c, w := testutil.NewTestContext(http.MethodGet, "/api/cartons/export", nil)
	testutil.SetQueryParams(c, map[string]string{"company_name": "Acme"})

	h.ExportCartons(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Acme", m.export.got.CompanyName)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "cartons-")
}

func TestCartonCompatible(t *testing.T) {
	h, m := newCartonHandler()
	m.compatible.result = &assignmentusecases.CompatibleCartonsResult{ToleranceMM: 2}

	c, w := testutil.NewTestContext(http.MethodGet, "/api/cartons/compatible", nil)
	testutil.SetQueryParams(c, map[string]string{"dieline_ids": "dl_a,dl_b", "tolerance_mm": "2"})

	h.CompatibleCartons(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"dl_a", "dl_b"}, m.compatible.got.DielineSIDs)
	require.NotNil(t, m.compatible.got.ToleranceMM)
	assert.Equal(t, 2.0, *m.compatible.got.ToleranceMM)
}

func TestCartonCompatible_BadTolerance(t *testing.T) {
	h, _ := newCartonHandler()
	c, w := testutil.NewTestContext(http.MethodGet, "/api/cartons/compatible", nil)
	testutil.SetQueryParams(c, map[string]string{"dieline_ids": "dl_a", "tolerance_mm": "wide"})

	h.CompatibleCartons(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCartonUsageHistory(t *testing.T) {
	h, m := newCartonHandler()
	m.history.result = &assignmentusecases.ListAssignmentsResult{Page: 1, PageSize: 20}

	c, w := testutil.NewTestContext(http.MethodGet, "/api/cartons/ctn_1/assignments", nil)
	testutil.SetURLParam(c, "id", "ctn_1")

	h.UsageHistory(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ctn_1", m.history.got.CartonSID)
}
