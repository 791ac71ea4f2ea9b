package handler

import (
	"hotelbooking/internal/admin/service"
	httputil "hotelbooking/pkg/http"
	"hotelbooking/pkg/logger"
	"net/http"

	"github.com/julienschmidt/httprouter"
)

type AdminHandler struct {
	service service.AdminService
	log     *logger.Logger
}

func NewAdminHandler(service service.AdminService, log *logger.Logger) *AdminHandler {
	return &AdminHandler{
		service: service,
		log:     log,
	}
}

func (h *AdminHandler) Seed(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := h.service.Seed(r.Context()); err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteNoContent(w)
}

func (h *AdminHandler) Reset(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := h.service.Reset(r.Context()); err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteNoContent(w)
}

func (h *AdminHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/v1/admin/seed", h.Seed)
	router.POST("/api/v1/admin/reset", h.Reset)
}
