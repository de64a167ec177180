package integration

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ongcloud/backend/tests/testutil"
)

func dataID(t *testing.T, data any) uint {
	t.Helper()
	obj, ok := data.(map[string]any)
	require.True(t, ok, "Expected an object payload")
	id, ok := obj["id"].(float64)
	require.True(t, ok, "Expected a numeric id")
	return uint(id)
}

func TestProjectLifecycle(t *testing.T) {
	srv := NewTestServer(t)
	ana := srv.Login(t, "ana@ejemplo.com", "123")
	bruno := srv.Login(t, "bruno@ejemplo.com", "123")
	carla := srv.Login(t, "carla@ejemplo.com", "123")
	admin := srv.Login(t, adminEmail, "123")

	var projectID uint

	t.Run("NGO user creates a project for their own NGO", func(t *testing.T) {
		w := testutil.DoJSON(t, srv.Engine, http.MethodPost, "/proyectos/",
			map[string]any{"name": "Proyecto Agua"}, ana)
		testutil.RequireStatus(t, w, http.StatusCreated)

		data := testutil.EnvelopeData(t, w)
		projectID = dataID(t, data)
		obj := data.(map[string]any)
		assert.Equal(t, "Proyecto Agua", obj["nombre"])
	})

	t.Run("duplicate project name conflicts", func(t *testing.T) {
		w := testutil.DoJSON(t, srv.Engine, http.MethodPost, "/proyectos/",
			map[string]any{"name": "Proyecto Agua"}, bruno)
		testutil.RequireStatus(t, w, http.StatusConflict)
	})

	t.Run("board member cannot create projects", func(t *testing.T) {
		w := testutil.DoJSON(t, srv.Engine, http.MethodPost, "/proyectos/",
			map[string]any{"name": "Proyecto Consejo"}, carla)
		testutil.RequireStatus(t, w, http.StatusForbidden)
	})

	t.Run("admin must name a creator NGO", func(t *testing.T) {
		w := testutil.DoJSON(t, srv.Engine, http.MethodPost, "/proyectos/",
			map[string]any{"name": "Proyecto Admin"}, admin)
		testutil.RequireStatus(t, w, http.StatusBadRequest)
	})

	t.Run("listing includes the new project", func(t *testing.T) {
		w := testutil.DoJSON(t, srv.Engine, http.MethodGet, "/proyectos/", nil, bruno)
		testutil.RequireStatus(t, w, http.StatusOK)

		list, ok := testutil.EnvelopeData(t, w).([]any)
		require.True(t, ok)
		assert.Len(t, list, 1)
	})

	t.Run("detail returns participants", func(t *testing.T) {
		w := testutil.DoJSON(t, srv.Engine, http.MethodGet,
			fmt.Sprintf("/proyectos/%d", projectID), nil, ana)
		testutil.RequireStatus(t, w, http.StatusOK)

		obj := testutil.EnvelopeData(t, w).(map[string]any)
		participantes := obj["participantes"].([]any)
		require.Len(t, participantes, 1)
		assert.Equal(t, "ONG Alpha", participantes[0].(map[string]any)["nombre"])
	})

	t.Run("missing project is a 404", func(t *testing.T) {
		w := testutil.DoJSON(t, srv.Engine, http.MethodGet, "/proyectos/9999", nil, ana)
		testutil.RequireStatus(t, w, http.StatusNotFound)
	})

	t.Run("second NGO joins as participant", func(t *testing.T) {
		w := testutil.DoJSON(t, srv.Engine, http.MethodPost,
			fmt.Sprintf("/ongs/%d/participar", projectID), nil, bruno)
		testutil.RequireStatus(t, w, http.StatusOK)
	})

	t.Run("joining twice conflicts", func(t *testing.T) {
		w := testutil.DoJSON(t, srv.Engine, http.MethodPost,
			fmt.Sprintf("/ongs/%d/participar", projectID), nil, bruno)
		testutil.RequireStatus(t, w, http.StatusConflict)
	})

	t.Run("board member cannot join", func(t *testing.T) {
		w := testutil.DoJSON(t, srv.Engine, http.MethodPost,
			fmt.Sprintf("/ongs/%d/participar", projectID), nil, carla)
		testutil.RequireStatus(t, w, http.StatusForbidden)
	})

	t.Run("only admins attach arbitrary participants", func(t *testing.T) {
		w := testutil.DoJSON(t, srv.Engine, http.MethodPost,
			fmt.Sprintf("/proyectos/%d/participantes/1", projectID), nil, bruno)
		testutil.RequireStatus(t, w, http.StatusForbidden)
	})

	t.Run("creator cannot join its own project again", func(t *testing.T) {
		w := testutil.DoJSON(t, srv.Engine, http.MethodPost,
			fmt.Sprintf("/ongs/%d/participar", projectID), nil, ana)
		testutil.RequireStatus(t, w, http.StatusConflict)
	})

	t.Run("participants listed creator first in association order", func(t *testing.T) {
		w := testutil.DoJSON(t, srv.Engine, http.MethodGet,
			fmt.Sprintf("/proyectos/%d/participantes", projectID), nil, ana)
		testutil.RequireStatus(t, w, http.StatusOK)

		list, ok := testutil.EnvelopeData(t, w).([]any)
		require.True(t, ok)
		require.Len(t, list, 2)
		assert.Equal(t, "ONG Alpha", list[0].(map[string]any)["nombre"])
		assert.Equal(t, "ONG Beta", list[1].(map[string]any)["nombre"])
	})
}

func TestFullProjectCreation(t *testing.T) {
	srv := NewTestServer(t)
	ana := srv.Login(t, "ana@ejemplo.com", "123")

	payload := map[string]any{
		"nombre":  "Proyecto Escuelas",
		"creador": map[string]any{"nombre": "ONG Alpha"},
		"ongs_participantes": []map[string]any{
			{"nombre": "ONG Beta"},
			{"nombre": "ONG Nueva"},
		},
		"planes_trabajo": []map[string]any{{"nombre": "Plan 2026"}},
		"etapas": []map[string]any{
			{"nombre": "Diagnóstico"},
			{"nombre": "Construcción"},
		},
		"pedidos_cobertura": []map[string]any{
			{"descripcion": "Vacunación", "tipo_cobertura": map[string]any{"nombre": "Salud"}},
			{"descripcion": "Útiles", "tipo_cobertura": map[string]any{"nombre": "Educación"}},
		},
		"compromisos": []map[string]any{{"descripcion": "Donación inicial"}},
	}

	w := testutil.DoJSON(t, srv.Engine, http.MethodPost, "/proyectos/full/", payload, ana)
	testutil.RequireStatus(t, w, http.StatusCreated)
	projectID := dataID(t, testutil.EnvelopeData(t, w))

	t.Run("unknown NGOs were created on the fly", func(t *testing.T) {
		w := testutil.DoJSON(t, srv.Engine, http.MethodGet, "/ongs/", nil, ana)
		testutil.RequireStatus(t, w, http.StatusOK)

		list := testutil.EnvelopeData(t, w).([]any)
		names := make([]string, 0, len(list))
		for _, item := range list {
			names = append(names, item.(map[string]any)["nombre"].(string))
		}
		assert.Contains(t, names, "ONG Nueva")
	})

	t.Run("creator leads the participant list", func(t *testing.T) {
		w := testutil.DoJSON(t, srv.Engine, http.MethodGet,
			fmt.Sprintf("/proyectos/%d/participantes", projectID), nil, ana)
		testutil.RequireStatus(t, w, http.StatusOK)

		list := testutil.EnvelopeData(t, w).([]any)
		require.Len(t, list, 3)
		names := make([]string, 0, len(list))
		for _, item := range list {
			names = append(names, item.(map[string]any)["nombre"].(string))
		}
		assert.Equal(t, []string{"ONG Alpha", "ONG Beta", "ONG Nueva"}, names)
	})

	t.Run("stages were attached", func(t *testing.T) {
		w := testutil.DoJSON(t, srv.Engine, http.MethodGet,
			fmt.Sprintf("/proyectos/%d/etapas", projectID), nil, ana)
		testutil.RequireStatus(t, w, http.StatusOK)

		list := testutil.EnvelopeData(t, w).([]any)
		require.Len(t, list, 2)
	})

	t.Run("coverage requests carry their type", func(t *testing.T) {
		w := testutil.DoJSON(t, srv.Engine, http.MethodGet,
			fmt.Sprintf("/proyectos/%d/pedidos", projectID), nil, ana)
		testutil.RequireStatus(t, w, http.StatusOK)

		list := testutil.EnvelopeData(t, w).([]any)
		require.Len(t, list, 2)
		first := list[0].(map[string]any)
		tipo := first["tipo_cobertura"].(map[string]any)
		assert.NotEmpty(t, tipo["nombre"])
	})

	t.Run("aggregate name conflicts roll back", func(t *testing.T) {
		w := testutil.DoJSON(t, srv.Engine, http.MethodPost, "/proyectos/full/", payload, ana)
		testutil.RequireStatus(t, w, http.StatusConflict)
	})
}

func TestStageCompletion(t *testing.T) {
	srv := NewTestServer(t)
	ana := srv.Login(t, "ana@ejemplo.com", "123")
	bruno := srv.Login(t, "bruno@ejemplo.com", "123")
	admin := srv.Login(t, adminEmail, "123")

	payload := map[string]any{
		"nombre":         "Proyecto Etapas",
		"creador":        map[string]any{"nombre": "ONG Alpha"},
		"planes_trabajo": []map[string]any{{"nombre": "Plan Base"}},
		"etapas":         []map[string]any{{"nombre": "Única"}},
	}
	w := testutil.DoJSON(t, srv.Engine, http.MethodPost, "/proyectos/full/", payload, ana)
	testutil.RequireStatus(t, w, http.StatusCreated)
	projectID := dataID(t, testutil.EnvelopeData(t, w))

	w = testutil.DoJSON(t, srv.Engine, http.MethodGet,
		fmt.Sprintf("/proyectos/%d/etapas", projectID), nil, ana)
	testutil.RequireStatus(t, w, http.StatusOK)
	stages := testutil.EnvelopeData(t, w).([]any)
	require.Len(t, stages, 1)
	stageID := uint(stages[0].(map[string]any)["id"].(float64))

	markPath := fmt.Sprintf("/proyectos/%d/etapas/%d/marcar-cumplida", projectID, stageID)

	t.Run("outsider NGO cannot complete stages", func(t *testing.T) {
		w := testutil.DoJSON(t, srv.Engine, http.MethodPut, markPath, nil, bruno)
		testutil.RequireStatus(t, w, http.StatusForbidden)
	})

	t.Run("creator NGO completes the stage", func(t *testing.T) {
		w := testutil.DoJSON(t, srv.Engine, http.MethodPut, markPath, nil, ana)
		testutil.RequireStatus(t, w, http.StatusOK)

		obj := testutil.EnvelopeData(t, w).(map[string]any)
		assert.Equal(t, true, obj["cumplida"])
	})

	t.Run("completion is one way", func(t *testing.T) {
		w := testutil.DoJSON(t, srv.Engine, http.MethodPut, markPath, nil, admin)
		testutil.RequireStatus(t, w, http.StatusConflict)
	})
}
