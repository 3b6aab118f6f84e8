package sliderControllers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/junaidrashid-git/bakery-api/common"
)

const uploadDir = "uploads/sliders"

// POST /slider/upload — multipart image upload, returns the public URL the
// frontend stores as imageUrl.
func UploadSliderImage() gin.HandlerFunc {
	return func(c *gin.Context) {
		file, err := c.FormFile("image")
		if err != nil {
			common.Respond(c, http.StatusBadRequest, "Image file is required")
			return
		}

		if err := os.MkdirAll(uploadDir, 0o755); err != nil {
			common.Respond(c, http.StatusInternalServerError, "Failed to prepare upload directory", err.Error())
			return
		}

		filename := uuid.NewString() + filepath.Ext(file.Filename)
		dst := filepath.Join(uploadDir, filename)
		if err := c.SaveUploadedFile(file, dst); err != nil {
			common.Respond(c, http.StatusInternalServerError, "Failed to save image", err.Error())
			return
		}

		common.Respond(c, http.StatusCreated, "Image uploaded successfully", gin.H{
			"imageUrl": fmt.Sprintf("/uploads/sliders/%s", filename),
		})
	}
}
