package api

import (
	restfulspec "github.com/emicklei/go-restful-openapi/v2"
	"github.com/emicklei/go-restful/v3"

	"github.com/Forgingalex/rei/internal/api/middleware"
	"github.com/Forgingalex/rei/internal/memory"
	"github.com/Forgingalex/rei/internal/models"
)

func RegisterRoutes(container *restful.Container, handler *Handler) {
	ws := new(restful.WebService)

	ws.
		Path("/api/v1").
		Consumes(restful.MIME_JSON).
		Produces(restful.MIME_JSON)

	// Health endpoint
	ws.
		Route(ws.GET("health").
			To(handler.Health).
			Doc("Health check").
			Metadata(restfulspec.KeyOpenAPITags, []string{"health"}).
			Writes(HealthResponse{}).
			Returns(200, "OK", HealthResponse{}))

	ws.
		Route(ws.POST("/deliberate").
			To(handler.Deliberate).
			Doc("Run a prompt through the full deliberation pipeline").
			Metadata(restfulspec.KeyOpenAPITags, []string{"deliberate"}).
			Reads(DeliberateRequest{}).
			Writes(models.DeliberationVerdict{}).
			Returns(200, "OK", models.DeliberationVerdict{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}).
			Returns(500, "Internal Server Error", middleware.ErrorResponse{}))

	ws.
		Route(ws.POST("/audit").
			To(handler.Audit).
			Doc("Score a response text for coercive patterns").
			Metadata(restfulspec.KeyOpenAPITags, []string{"audit"}).
			Reads(AuditRequest{}).
			Writes(models.AuditResult{}).
			Returns(200, "OK", models.AuditResult{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}).
			Returns(500, "Internal Server Error", middleware.ErrorResponse{}))

	ws.
		Route(ws.POST("/boundaries").
			To(handler.AddBoundary).
			Doc("Record a boundary the user has declared").
			Metadata(restfulspec.KeyOpenAPITags, []string{"boundaries"}).
			Reads(AddBoundaryRequest{}).
			Writes(AddBoundaryResponse{}).
			Returns(200, "OK", AddBoundaryResponse{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}).
			Returns(500, "Internal Server Error", middleware.ErrorResponse{}))

	ws.
		Route(ws.GET("/boundaries").
			To(handler.ListBoundaries).
			Doc("List all stored boundaries").
			Metadata(restfulspec.KeyOpenAPITags, []string{"boundaries"}).
			Writes(BoundariesResponse{}).
			Returns(200, "OK", BoundariesResponse{}).
			Returns(500, "Internal Server Error", middleware.ErrorResponse{}))

	ws.
		Route(ws.GET("/boundaries/stats").
			To(handler.BoundaryStats).
			Doc("Boundary store statistics").
			Metadata(restfulspec.KeyOpenAPITags, []string{"boundaries"}).
			Writes(memory.Stats{}).
			Returns(200, "OK", memory.Stats{}).
			Returns(500, "Internal Server Error", middleware.ErrorResponse{}))

	ws.
		Route(ws.DELETE("/boundaries/{boundary_id}").
			To(handler.RemoveBoundary).
			Doc("Remove a stored boundary").
			Metadata(restfulspec.KeyOpenAPITags, []string{"boundaries"}).
			Param(ws.PathParameter("boundary_id", "Boundary id returned when it was stored").DataType("string")).
			Returns(204, "No Content", nil).
			Returns(404, "Boundary Not Found", middleware.ErrorResponse{}).
			Returns(500, "Internal Server Error", middleware.ErrorResponse{}))

	container.Add(ws)
}
