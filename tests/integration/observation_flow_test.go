package integration

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ongcloud/backend/tests/testutil"
)

func TestObservationFlow(t *testing.T) {
	srv := NewTestServer(t)
	ana := srv.Login(t, "ana@ejemplo.com", "123")
	bruno := srv.Login(t, "bruno@ejemplo.com", "123")
	carla := srv.Login(t, "carla@ejemplo.com", "123")
	admin := srv.Login(t, adminEmail, "123")

	w := testutil.DoJSON(t, srv.Engine, http.MethodPost, "/proyectos/",
		map[string]any{"name": "Proyecto Observado"}, ana)
	testutil.RequireStatus(t, w, http.StatusCreated)
	projectID := dataID(t, testutil.EnvelopeData(t, w))

	createPath := fmt.Sprintf("/observaciones/proyectos/%d", projectID)
	listPath := createPath

	t.Run("NGO user cannot record observations", func(t *testing.T) {
		w := testutil.DoJSON(t, srv.Engine, http.MethodPost, createPath,
			map[string]any{"descripcion": "Intento inválido"}, ana)
		testutil.RequireStatus(t, w, http.StatusForbidden)
	})

	t.Run("board member records an observation", func(t *testing.T) {
		w := testutil.DoJSON(t, srv.Engine, http.MethodPost, createPath,
			map[string]any{"descripcion": "Faltan comprobantes de gastos"}, carla)
		testutil.RequireStatus(t, w, http.StatusCreated)

		obj := testutil.EnvelopeData(t, w).(map[string]any)
		assert.Equal(t, "Consejo Norte", obj["consejo"])
	})

	t.Run("observation on a missing project is a 404", func(t *testing.T) {
		w := testutil.DoJSON(t, srv.Engine, http.MethodPost,
			"/observaciones/proyectos/9999",
			map[string]any{"descripcion": "Nada"}, carla)
		testutil.RequireStatus(t, w, http.StatusNotFound)
	})

	t.Run("creator NGO reads its project observations", func(t *testing.T) {
		w := testutil.DoJSON(t, srv.Engine, http.MethodGet, listPath, nil, ana)
		testutil.RequireStatus(t, w, http.StatusOK)

		list := testutil.EnvelopeData(t, w).([]any)
		require.Len(t, list, 1)
	})

	t.Run("unrelated NGO cannot read them", func(t *testing.T) {
		w := testutil.DoJSON(t, srv.Engine, http.MethodGet, listPath, nil, bruno)
		testutil.RequireStatus(t, w, http.StatusForbidden)
	})

	t.Run("admin variant is admin only", func(t *testing.T) {
		w := testutil.DoJSON(t, srv.Engine, http.MethodGet, listPath+"/admin", nil, ana)
		testutil.RequireStatus(t, w, http.StatusForbidden)

		w = testutil.DoJSON(t, srv.Engine, http.MethodGet, listPath+"/admin", nil, admin)
		testutil.RequireStatus(t, w, http.StatusOK)
	})

	t.Run("platform-wide listing is admin only", func(t *testing.T) {
		w := testutil.DoJSON(t, srv.Engine, http.MethodGet, "/observaciones/all", nil, carla)
		testutil.RequireStatus(t, w, http.StatusForbidden)

		w = testutil.DoJSON(t, srv.Engine, http.MethodGet, "/observaciones/all", nil, admin)
		testutil.RequireStatus(t, w, http.StatusOK)

		list := testutil.EnvelopeData(t, w).([]any)
		require.Len(t, list, 1)
		obj := list[0].(map[string]any)
		assert.Equal(t, "Proyecto Observado", obj["proyecto"])
	})
}
