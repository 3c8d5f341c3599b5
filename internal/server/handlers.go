package server

import (
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"stadium-admin/internal/domain"
	"stadium-admin/internal/usecase"
)

type registerReq struct {
	Name             string `json:"name"`
	Email            string `json:"email"`
	Password         string `json:"password"`
	Role             string `json:"role"`
	RegistrationCode string `json:"registrationCode"`
}

func (s *Server) handleRegister(c *gin.Context) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		s.abortErr(c, http.StatusBadRequest, "ValidationError", "invalid json")
		return
	}
	token, u, err := s.auth.Register(req.Name, req.Email, req.Password, domain.Role(req.Role), req.RegistrationCode)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "user": u})
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) handleLogin(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		s.abortErr(c, http.StatusBadRequest, "ValidationError", "invalid json")
		return
	}
	token, u, err := s.auth.Login(req.Email, req.Password)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "user": u})
}

func (s *Server) handleListStadiums(c *gin.Context) {
	activeOnly := c.Query("all") == ""
	owner := c.Query("owner")
	out, err := s.stadiums.List(owner, activeOnly)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) handleCreateStadium(c *gin.Context) {
	var st domain.Stadium
	if err := c.ShouldBindJSON(&st); err != nil {
		s.abortErr(c, http.StatusBadRequest, "ValidationError", "invalid json")
		return
	}
	id, err := s.stadiums.Create(s.userID(c), &st)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

func (s *Server) handleGetStadium(c *gin.Context) {
	st, err := s.stadiums.Get(c.Param("id"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, st)
}

func (s *Server) handleUpdateStadium(c *gin.Context) {
	var st domain.Stadium
	if err := c.ShouldBindJSON(&st); err != nil {
		s.abortErr(c, http.StatusBadRequest, "ValidationError", "invalid json")
		return
	}
	st.ID = c.Param("id")
	if err := s.stadiums.Update(s.userID(c), &st); err != nil {
		s.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) handleDeactivateStadium(c *gin.Context) {
	if err := s.stadiums.Deactivate(s.userID(c), c.Param("id")); err != nil {
		s.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) handleVenueStats(c *gin.Context) {
	st, err := s.orders.VenueStats(c.Param("id"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, st)
}

func (s *Server) handleListShops(c *gin.Context) {
	out, err := s.shops.ListByStadium(c.Param("id"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) handleCreateShop(c *gin.Context) {
	var sh domain.Shop
	if err := c.ShouldBindJSON(&sh); err != nil {
		s.abortErr(c, http.StatusBadRequest, "ValidationError", "invalid json")
		return
	}
	id, err := s.shops.Create(s.userID(c), c.Param("id"), &sh)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

func (s *Server) handleGetShop(c *gin.Context) {
	sh, err := s.shops.Get(c.Param("id"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, sh)
}

func (s *Server) handleUpdateShop(c *gin.Context) {
	var sh domain.Shop
	if err := c.ShouldBindJSON(&sh); err != nil {
		s.abortErr(c, http.StatusBadRequest, "ValidationError", "invalid json")
		return
	}
	sh.ID = c.Param("id")
	if err := s.shops.Update(s.userID(c), &sh); err != nil {
		s.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) handleDeleteShop(c *gin.Context) {
	if err := s.shops.Delete(s.userID(c), c.Param("id")); err != nil {
		s.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) handleListMenuItems(c *gin.Context) {
	out, err := s.menu.ListByShop(c.Param("id"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) handleCreateMenuItem(c *gin.Context) {
	var m domain.MenuItem
	if err := c.ShouldBindJSON(&m); err != nil {
		s.abortErr(c, http.StatusBadRequest, "ValidationError", "invalid json")
		return
	}
	id, err := s.menu.Create(s.userID(c), c.Param("id"), &m)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

func (s *Server) handleUpdateMenuItem(c *gin.Context) {
	var m domain.MenuItem
	if err := c.ShouldBindJSON(&m); err != nil {
		s.abortErr(c, http.StatusBadRequest, "ValidationError", "invalid json")
		return
	}
	m.ID = c.Param("id")
	if err := s.menu.Update(s.userID(c), &m); err != nil {
		s.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) handleDeleteMenuItem(c *gin.Context) {
	if err := s.menu.Delete(s.userID(c), c.Param("id")); err != nil {
		s.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func orderFilterFromQuery(c *gin.Context) (usecase.OrderFilter, error) {
	f := usecase.OrderFilter{StadiumID: c.Query("stadiumId")}
	if v := c.Query("status"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return f, usecase.ErrValidation("status must be an integer code")
		}
		st := domain.OrderStatus(n)
		if !st.Valid() {
			return f, usecase.ErrInvalidStatus(n)
		}
		f.Status = &st
	}
	switch c.Query("sort") {
	case "", "created":
		f.Sort = usecase.SortCreatedDesc
	case "total":
		f.Sort = usecase.SortTotalDesc
	case "items":
		f.Sort = usecase.SortCartSizeDesc
	default:
		return f, usecase.ErrValidation("unknown sort")
	}
	return f, nil
}

func (s *Server) handleListOrders(c *gin.Context) {
	f, err := orderFilterFromQuery(c)
	if err != nil {
		s.fail(c, err)
		return
	}
	out, err := s.orders.List(f)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) handleCreateOrder(c *gin.Context) {
	var o domain.Order
	if err := c.ShouldBindJSON(&o); err != nil {
		s.abortErr(c, http.StatusBadRequest, "ValidationError", "invalid json")
		return
	}
	id, err := s.orders.Create(&o)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

func (s *Server) handleGetOrder(c *gin.Context) {
	o, err := s.orders.Get(c.Param("id"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, o)
}

type setStatusReq struct {
	Status int `json:"status"`
}

func (s *Server) handleSetOrderStatus(c *gin.Context) {
	var req setStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		s.abortErr(c, http.StatusBadRequest, "ValidationError", "invalid json")
		return
	}
	o, err := s.orders.SetStatus(c.Param("id"), domain.OrderStatus(req.Status))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, o)
}

// handleOrderStream serves the live order feed as server-sent events. The
// subscription is torn down when the client goes away.
func (s *Server) handleOrderStream(c *gin.Context) {
	f, err := orderFilterFromQuery(c)
	if err != nil {
		s.fail(c, err)
		return
	}
	feed := s.orders.Subscribe(f)
	defer feed.Unsubscribe()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	ctx := c.Request.Context()
	c.Stream(func(w io.Writer) bool {
		select {
		case ev, ok := <-feed.Events():
			if !ok {
				return false
			}
			kind := "added"
			if ev.Kind == usecase.EventStatusChanged {
				kind = "status"
			}
			c.SSEvent(kind, ev.Order)
			return true
		case <-ctx.Done():
			return false
		}
	})
}

func (s *Server) handleGetSelection(c *gin.Context) {
	c.JSON(http.StatusOK, s.selection.Selection(s.userID(c)))
}

type selectionReq struct {
	Stadium *domain.Stadium `json:"stadium"`
	Shop    *domain.Shop    `json:"shop"`
	Field   string          `json:"field"`
}

// handleSetSelection replaces one side of the venue selection. "field" names
// which side, so a null stadium/shop clears it rather than being ignored.
func (s *Server) handleSetSelection(c *gin.Context) {
	var req selectionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		s.abortErr(c, http.StatusBadRequest, "ValidationError", "invalid json")
		return
	}
	uid := s.userID(c)
	var err error
	switch req.Field {
	case "stadium":
		err = s.selection.SetSelectedStadium(uid, req.Stadium)
	case "shop":
		err = s.selection.SetSelectedShop(uid, req.Shop)
	default:
		s.abortErr(c, http.StatusBadRequest, "ValidationError", "field must be stadium or shop")
		return
	}
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, s.selection.Selection(uid))
}

func (s *Server) handleClearSelection(c *gin.Context) {
	if err := s.selection.Clear(s.userID(c)); err != nil {
		s.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

const maxUploadBytes = 15 << 20

func (s *Server) handleUpload(c *gin.Context) {
	if err := c.Request.ParseMultipartForm(maxUploadBytes); err != nil {
		s.abortErr(c, http.StatusBadRequest, "ValidationError", "invalid multipart form")
		return
	}
	f, hdr, err := c.Request.FormFile("file")
	if err != nil {
		s.abortErr(c, http.StatusBadRequest, "ValidationError", "field 'file' required")
		return
	}
	defer f.Close()
	if hdr.Size > maxUploadBytes {
		s.abortErr(c, http.StatusBadRequest, "ValidationError", "file too large")
		return
	}
	name := filepath.Base(hdr.Filename)
	if !validImageName(name) {
		s.abortErr(c, http.StatusBadRequest, "ValidationError", "only jpg/png allowed")
		return
	}
	collection := c.PostForm("collection")
	if collection == "" {
		collection = "misc"
	}
	data, err := io.ReadAll(io.LimitReader(f, maxUploadBytes))
	if err != nil {
		s.abortErr(c, http.StatusInternalServerError, "ServerError", "cannot read file")
		return
	}
	path := fmt.Sprintf("%s/%s/%d_%s", collection, s.userID(c), time.Now().UnixNano(), name)
	url, err := s.objects.Upload(path, data)
	if err != nil {
		s.fail(c, &usecase.StoreError{Op: "upload object", Err: err})
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}

func validImageName(name string) bool {
	n := strings.ToLower(name)
	return strings.HasSuffix(n, ".jpg") || strings.HasSuffix(n, ".jpeg") || strings.HasSuffix(n, ".png")
}
