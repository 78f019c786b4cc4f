package handlers

import (
	"mime/multipart"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"hotelbooking/models"
	"hotelbooking/services/hotel"
	"hotelbooking/utils"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// MyHotelHandler serves the owner endpoints under /api/my-hotels.
type MyHotelHandler struct {
	Hotels hotel.HotelService
}

func NewMyHotelHandler(svc hotel.HotelService) *MyHotelHandler {
	return &MyHotelHandler{Hotels: svc}
}

// maxUploadBody bounds the whole multipart body: every image plus the text fields.
const maxUploadBody = hotel.MaxImages*hotel.MaxImageSize + 1<<20

// bindHotelForm reads the multipart hotel form. List fields arrive either as
// repeated keys ("facilities") or indexed keys ("facilities[0]").
func bindHotelForm(c *gin.Context) (models.HotelForm, []*multipart.FileHeader, error) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadBody)

	var form models.HotelForm
	if err := c.ShouldBindWith(&form, binding.FormMultipart); err != nil {
		return form, nil, utils.BindingError(err)
	}

	mf := c.Request.MultipartForm
	if mf == nil {
		return form, nil, utils.NewValidationError("Invalid request", utils.FieldError{Field: "body", Message: "multipart form expected"})
	}
	form.Facilities = listField(mf.Value, "facilities")
	form.ImageURLs = listField(mf.Value, "imageUrls")
	return form, mf.File["imageFiles"], nil
}

func listField(values map[string][]string, name string) []string {
	out := append([]string{}, values[name]...)
	out = append(out, values[name+"[]"]...)

	type indexed struct {
		idx int
		val []string
	}
	var extra []indexed
	prefix := name + "["
	for key, vals := range values {
		if !strings.HasPrefix(key, prefix) || !strings.HasSuffix(key, "]") {
			continue
		}
		idx, err := strconv.Atoi(key[len(prefix) : len(key)-1])
		if err != nil {
			continue
		}
		extra = append(extra, indexed{idx: idx, val: vals})
	}
	sort.Slice(extra, func(i, j int) bool { return extra[i].idx < extra[j].idx })
	for _, e := range extra {
		out = append(out, e.val...)
	}
	return out
}

// CreateMyHotelHandler handles POST /api/my-hotels.
func (h *MyHotelHandler) CreateMyHotelHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	form, images, err := bindHotelForm(c)
	if err != nil {
		utils.RespondError(c, err, "")
		return
	}

	created, err := h.Hotels.CreateHotel(c.Request.Context(), userID, form, images)
	if err != nil {
		utils.RespondError(c, err, "Something went wrong")
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListMyHotelsHandler handles GET /api/my-hotels.
func (h *MyHotelHandler) ListMyHotelsHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	hotels, err := h.Hotels.ListOwnHotels(c.Request.Context(), userID)
	if err != nil {
		utils.RespondError(c, err, "Error fetching hotels")
		return
	}
	c.JSON(http.StatusOK, hotels)
}

// GetMyHotelHandler handles GET /api/my-hotels/:hotelId.
func (h *MyHotelHandler) GetMyHotelHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	found, err := h.Hotels.GetOwnHotel(c.Request.Context(), userID, c.Param("hotelId"))
	if err != nil {
		utils.RespondError(c, err, "Error fetching hotel")
		return
	}
	c.JSON(http.StatusOK, found)
}

// UpdateMyHotelHandler handles PUT /api/my-hotels/:hotelId.
func (h *MyHotelHandler) UpdateMyHotelHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	form, images, err := bindHotelForm(c)
	if err != nil {
		utils.RespondError(c, err, "")
		return
	}

	updated, err := h.Hotels.UpdateHotel(c.Request.Context(), userID, c.Param("hotelId"), form, images)
	if err != nil {
		utils.RespondError(c, err, "Something went wrong")
		return
	}
	c.JSON(http.StatusOK, updated)
}
