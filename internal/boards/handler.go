package boards

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the board API. Mutating endpoints answer with the
// plain-text bodies the original board protocol uses ("reported",
// "success", "incorrect password").
func RegisterRoutes(r *gin.Engine, svc *Service) {
	r.POST("/api/threads/:board", func(c *gin.Context) {
		var req struct {
			Text           string `form:"text" json:"text" binding:"required"`
			DeletePassword string `form:"delete_password" json:"delete_password" binding:"required"`
		}
		if err := c.ShouldBind(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		view, err := svc.CreateThread(c.Request.Context(), c.Param("board"), req.Text, req.DeletePassword)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create thread"})
			return
		}
		c.JSON(http.StatusOK, view)
	})

	r.GET("/api/threads/:board", func(c *gin.Context) {
		views, err := svc.RecentThreads(c.Request.Context(), c.Param("board"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list threads"})
			return
		}
		c.JSON(http.StatusOK, views)
	})

	r.PUT("/api/threads/:board", func(c *gin.Context) {
		var req struct {
			ThreadID string `form:"thread_id" json:"thread_id" binding:"required"`
		}
		if err := c.ShouldBind(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		err := svc.ReportThread(c.Request.Context(), c.Param("board"), req.ThreadID)
		if errors.Is(err, ErrThreadNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "thread not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not report thread"})
			return
		}
		c.String(http.StatusOK, "reported")
	})

	r.DELETE("/api/threads/:board", func(c *gin.Context) {
		var req struct {
			ThreadID       string `form:"thread_id" json:"thread_id" binding:"required"`
			DeletePassword string `form:"delete_password" json:"delete_password" binding:"required"`
		}
		if err := c.ShouldBind(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		err := svc.DeleteThread(c.Request.Context(), c.Param("board"), req.ThreadID, req.DeletePassword)
		switch {
		case errors.Is(err, ErrThreadNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "thread not found"})
		case errors.Is(err, ErrIncorrectPassword):
			c.String(http.StatusOK, "incorrect password")
		case err != nil:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete thread"})
		default:
			c.String(http.StatusOK, "success")
		}
	})

	r.POST("/api/replies/:board", func(c *gin.Context) {
		var req struct {
			ThreadID       string `form:"thread_id" json:"thread_id" binding:"required"`
			Text           string `form:"text" json:"text" binding:"required"`
			DeletePassword string `form:"delete_password" json:"delete_password" binding:"required"`
		}
		if err := c.ShouldBind(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		view, err := svc.AddReply(c.Request.Context(), c.Param("board"), req.ThreadID, req.Text, req.DeletePassword)
		if errors.Is(err, ErrThreadNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "thread not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not add reply"})
			return
		}
		c.JSON(http.StatusOK, view)
	})

	r.GET("/api/replies/:board", func(c *gin.Context) {
		threadID := c.Query("thread_id")
		if threadID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "thread_id is required"})
			return
		}
		view, err := svc.Thread(c.Request.Context(), c.Param("board"), threadID)
		if errors.Is(err, ErrThreadNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "thread not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load thread"})
			return
		}
		c.JSON(http.StatusOK, view)
	})

	r.PUT("/api/replies/:board", func(c *gin.Context) {
		var req struct {
			ThreadID string `form:"thread_id" json:"thread_id" binding:"required"`
			ReplyID  string `form:"reply_id" json:"reply_id" binding:"required"`
		}
		if err := c.ShouldBind(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		err := svc.ReportReply(c.Request.Context(), c.Param("board"), req.ThreadID, req.ReplyID)
		if errors.Is(err, ErrReplyNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "reply not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not report reply"})
			return
		}
		c.String(http.StatusOK, "reported")
	})

	r.DELETE("/api/replies/:board", func(c *gin.Context) {
		var req struct {
			ThreadID       string `form:"thread_id" json:"thread_id" binding:"required"`
			ReplyID        string `form:"reply_id" json:"reply_id" binding:"required"`
			DeletePassword string `form:"delete_password" json:"delete_password" binding:"required"`
		}
		if err := c.ShouldBind(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		err := svc.DeleteReply(c.Request.Context(), c.Param("board"), req.ThreadID, req.ReplyID, req.DeletePassword)
		switch {
		case errors.Is(err, ErrThreadNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "thread not found"})
		case errors.Is(err, ErrReplyNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "reply not found"})
		case errors.Is(err, ErrIncorrectPassword):
			c.String(http.StatusOK, "incorrect password")
		case err != nil:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete reply"})
		default:
			c.String(http.StatusOK, "success")
		}
	})
}
