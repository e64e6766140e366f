package server

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"maraos/internal/vfs"
	appver "maraos/internal/version"
)

func (s *Server) mountAPI(r *gin.Engine) {
	api := r.Group("/api")
	api.GET("/health", gin.WrapF(func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}))
	api.GET("/version", gin.WrapF(func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"version": appver.AppVersion})
	}))

	// Catalog, in the same envelope the manifest loader accepts.
	api.GET("/console/files", gin.WrapF(s.filesHandler))
	api.POST("/console/reload", gin.WrapF(s.reloadHandler))

	// Headless console sessions
	api.GET("/console/ws", gin.WrapF(s.consoleWSHandler))

	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.metrics.registry, promhttp.HandlerOpts{})))
}

type filesResponse struct {
	Success bool              `json:"success"`
	Files   []vfs.VirtualFile `json:"files"`
}

func (s *Server) filesHandler(w http.ResponseWriter, r *http.Request) {
	files := s.Catalog().List()
	if files == nil {
		files = []vfs.VirtualFile{}
	}
	writeJSON(w, http.StatusOK, filesResponse{Success: true, Files: files})
}

func (s *Server) reloadHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.Reload(r.Context()); err != nil {
		writeJSON(w, http.StatusBadGateway, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"files": s.Catalog().Len()})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("content-type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	if v == nil {
		return
	}
	if err, ok := v.(error); ok {
		_ = json.NewEncoder(w).Encode(map[string]any{"error": err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(v)
}
