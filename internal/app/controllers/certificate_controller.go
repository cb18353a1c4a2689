package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nandan/studenthub/internal/app/models/dto"
	"github.com/nandan/studenthub/internal/app/services"
	"github.com/nandan/studenthub/internal/middleware"
	"github.com/nandan/studenthub/internal/pkg/validation"
)

// CertificateController handles personal and academic certificate endpoints
type CertificateController struct {
	certificateService *services.CertificateService
}

// NewCertificateController creates a new CertificateController
func NewCertificateController(certificateService *services.CertificateService) *CertificateController {
	return &CertificateController{certificateService: certificateService}
}

// SubmitAcademic handles academic certificate submission
// @Summary Submit an academic certificate for review
// @Description Accepts a multipart form; the optional image file is stored as a data URI. Submissions always start out pending.
// @Tags certificates
// @Accept multipart/form-data
// @Produce json
// @Param studentId formData string true "Student identifier"
// @Param domain formData string true "Certificate domain"
// @Param certificateName formData string true "Certificate name"
// @Param skills formData string false "JSON-encoded array of skill tags"
// @Param image formData file false "Certificate image"
// @Success 201 {object} dto.CertificateResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /academic-certificates [post]
func (c *CertificateController) SubmitAcademic(ctx *gin.Context) {
	var form dto.AcademicCertificateForm
	if err := ctx.ShouldBind(&form); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}
	if err := validation.Struct(&form); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if header, err := ctx.FormFile("image"); err == nil {
		dataURI, err := fileToDataURI(header)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		form.Image = dataURI
	}

	cert, err := c.certificateService.SubmitAcademic(ctx, &form)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.CertificateResponse{
		Message:     "Certificate submitted for review",
		Certificate: cert,
	})
}

// ListAcademic returns a student's academic certificates
// @Summary List a student's academic certificates
// @Tags certificates
// @Produce json
// @Param studentId path string true "Student identifier"
// @Success 200 {array} models.AcademicCertificate
// @Failure 404 {object} dto.ErrorResponse
// @Router /academic-certificates/{studentId} [get]
func (c *CertificateController) ListAcademic(ctx *gin.Context) {
	certs, err := c.certificateService.ListAcademic(ctx, ctx.Param("studentId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, certs)
}

// DeleteAcademic removes an academic certificate
// @Summary Delete an academic certificate
// @Description Succeeds even when the certificate is already gone; only a missing student is an error.
// @Tags certificates
// @Produce json
// @Param studentId path string true "Student identifier"
// @Param certificateId path string true "Certificate identifier"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /academic-certificates/{studentId}/{certificateId} [delete]
func (c *CertificateController) DeleteAcademic(ctx *gin.Context) {
	err := c.certificateService.DeleteAcademic(ctx, ctx.Param("studentId"), ctx.Param("certificateId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Academic certificate deleted successfully"})
}

// ListPending returns every pending academic certificate across all students
// @Summary List pending academic certificates
// @Tags certificates
// @Produce json
// @Success 200 {array} dto.PendingCertificate
// @Failure 400 {object} dto.ErrorResponse
// @Router /teacher/academic-certificates/pending [get]
func (c *CertificateController) ListPending(ctx *gin.Context) {
	pending, err := c.certificateService.ListPending(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, pending)
}

// Review records a verdict on a pending certificate
// @Summary Review an academic certificate
// @Description Approves or rejects a pending certificate; approval increments the student's skill counts.
// @Tags certificates
// @Accept json
// @Produce json
// @Param studentId path string true "Student identifier"
// @Param certificateId path string true "Certificate identifier"
// @Param request body dto.ReviewRequest true "Verdict"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /teacher/academic-certificates/{studentId}/{certificateId}/review [put]
func (c *CertificateController) Review(ctx *gin.Context) {
	var req dto.ReviewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	cert, err := c.certificateService.Review(ctx, ctx.Param("studentId"), ctx.Param("certificateId"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{
		Message: fmt.Sprintf("Certificate %s successfully", cert.Status),
	})
}

// SubmitPersonal handles personal certificate submission
// @Summary Add a personal certificate
// @Tags certificates
// @Accept multipart/form-data
// @Produce json
// @Param studentId formData string true "Student identifier"
// @Param name formData string true "Certificate name"
// @Param image formData file false "Certificate image"
// @Success 201 {object} dto.CertificateResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /certificates [post]
func (c *CertificateController) SubmitPersonal(ctx *gin.Context) {
	var form dto.PersonalCertificateForm
	if err := ctx.ShouldBind(&form); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}
	if err := validation.Struct(&form); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if header, err := ctx.FormFile("image"); err == nil {
		dataURI, err := fileToDataURI(header)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		form.Image = dataURI
	}

	cert, err := c.certificateService.SubmitPersonal(ctx, &form)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.CertificateResponse{
		Message:     "Certificate added successfully",
		Certificate: cert,
	})
}

// ListPersonal returns a student's personal certificates
// @Summary List a student's personal certificates
// @Tags certificates
// @Produce json
// @Param studentId path string true "Student identifier"
// @Success 200 {array} models.PersonalCertificate
// @Failure 404 {object} dto.ErrorResponse
// @Router /certificates/{studentId} [get]
func (c *CertificateController) ListPersonal(ctx *gin.Context) {
	certs, err := c.certificateService.ListPersonal(ctx, ctx.Param("studentId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, certs)
}

// DeletePersonal removes a personal certificate
// @Summary Delete a personal certificate
// @Tags certificates
// @Produce json
// @Param studentId path string true "Student identifier"
// @Param certificateId path string true "Certificate identifier"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /certificates/{studentId}/{certificateId} [delete]
func (c *CertificateController) DeletePersonal(ctx *gin.Context) {
	err := c.certificateService.DeletePersonal(ctx, ctx.Param("studentId"), ctx.Param("certificateId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Certificate deleted successfully"})
}
