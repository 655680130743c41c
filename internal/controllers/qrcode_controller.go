package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skip2/go-qrcode"

	"socialite-be/internal/middleware"
)

type QRCodeController struct {
	frontendURL string
}

func NewQRCodeController(frontendURL string) *QRCodeController {
	return &QRCodeController{
		frontendURL: frontendURL,
	}
}

// GenerateQRCode handles GET /api/v1/users/:id/qrcode - renders a QR
// code pointing at the user's profile page.
func (qc *QRCodeController) GenerateQRCode(c *gin.Context) {
	target := middleware.TargetUser(c)
	if target == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown user"})
		return
	}

	profileURL := qc.frontendURL + "/u/" + target.Username

	// 256x256 pixels, medium error recovery
	qrCode, err := qrcode.New(profileURL, qrcode.Medium)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate QR code"})
		return
	}

	pngData, err := qrCode.PNG(256)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate QR code image"})
		return
	}

	c.Header("Content-Type", "image/png")
	c.Header("Content-Disposition", "inline; filename=qrcode.png")
	c.Data(http.StatusOK, "image/png", pngData)
}
