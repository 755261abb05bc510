package main

import (
	"math"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/portfolio-motion/motion"
)

// server wires the motion units to the page.
type server struct {
	cfg     *Config
	scroll  *motion.ScrollMapper
	ramp    *motion.ColorRamp
	cursors *cursorRegistry
	icons   []floatingIcon
	labels  []motion.Track
}

func newServer(cfg *Config) (*server, error) {
	ramp, err := motion.NewColorRamp(backgroundStops...)
	if err != nil {
		return nil, err
	}
	return &server{
		cfg:     cfg,
		scroll:  motion.NewScrollMapper(pageTimeline...),
		ramp:    ramp,
		cursors: newCursorRegistry(cfg.TrailLength, cfg.SessionTTL),
		icons:   floatingIcons(),
		labels:  floatingLabelTracks(),
	}, nil
}

func (s *server) router() *gin.Engine {
	r := gin.Default()
	r.LoadHTMLGlob(filepath.Join(s.cfg.TemplateDir, "*"))

	r.Static("/static", "./static")
	r.Use(sessionMiddleware())

	// Home page route
	r.GET("/", func(c *gin.Context) {
		c.HTML(http.StatusOK, "index.html", gin.H{
			"heroName":       HeroName,
			"heroTagline":    HeroTagline,
			"firstRole":      Roles[0],
			"aboutMeContent": AboutMe,
			"whatIDo":        WhatIDo,
			"skills":         Skills,
			"sections":       Sections,
			"floatingLabels": FloatingLabels,
		})
	})

	m := r.Group("/motion")
	m.GET("/scroll", s.scrollValues)
	m.GET("/typewriter", s.typewriterStream)
	m.GET("/floating", s.floatingValues)
	m.GET("/cursor", s.cursorSnapshot)
	m.POST("/cursor/events", s.cursorEvents)
	m.DELETE("/cursor", s.cursorStop)
	return r
}

type scrollQuery struct {
	Offset float64 `form:"offset"`
	Height float64 `form:"height" binding:"gte=0"`
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// scrollValues answers with every section's values at the given offset.
// height is the scrollable height of the page, used for progress.
func (s *server) scrollValues(c *gin.Context) {
	var q scrollQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	// JSON cannot carry NaN or Inf
	if !finite(q.Offset, q.Height) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "offset and height must be finite numbers"})
		return
	}

	progress := motion.Progress(q.Offset, q.Height)
	c.JSON(http.StatusOK, gin.H{
		"offset":      q.Offset,
		"values":      s.scroll.Evaluate(q.Offset),
		"progress":    progress,
		"background":  s.ramp.At(progress),
		"back_to_top": q.Offset > backToTopOffset,
	})
}

type typewriterQuery struct {
	Limit int `form:"limit" binding:"gte=0"`
}

// typewriterStream pushes the hero typewriter's text as server-sent
// events until the client goes away, or after limit events if given.
func (s *server) typewriterStream(c *gin.Context) {
	var q typewriterQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Every tick is delivered: a slow client holds the typewriter back
	// rather than missing frames.
	ctx := c.Request.Context()
	texts := make(chan string, 16)
	done := make(chan struct{})
	tw, err := motion.StartTypewriter(Roles, s.cfg.Typewriter, motion.WithOnText(func(t string) {
		select {
		case texts <- t:
		case <-done:
		case <-ctx.Done():
		}
	}))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer tw.Stop()
	defer close(done)

	c.Header("Cache-Control", "no-cache")
	for sent := 0; q.Limit == 0 || sent < q.Limit; sent++ {
		select {
		case <-ctx.Done():
			return
		case t := <-texts:
			c.SSEvent("text", t)
			c.Writer.Flush()
		}
	}
}

type floatingQuery struct {
	T float64 `form:"t" binding:"gte=0"`
}

type floatingIconView struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Rotate float64 `json:"rotate"`
	Scale  float64 `json:"scale"`
}

type floatingLabelView struct {
	Text    string  `json:"text"`
	Opacity float64 `json:"opacity"`
}

// floatingValues samples the floating decorations t seconds after the
// page mounted.
func (s *server) floatingValues(c *gin.Context) {
	var q floatingQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !finite(q.T) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "t must be a finite number"})
		return
	}
	elapsed := time.Duration(q.T * float64(time.Second))

	icons := make([]floatingIconView, len(s.icons))
	for i, ic := range s.icons {
		icons[i] = floatingIconView{
			Left:   ic.Left,
			Top:    ic.Top,
			X:      ic.X.Sample(elapsed),
			Y:      ic.Y.Sample(elapsed),
			Rotate: ic.Rotate.Sample(elapsed),
			Scale:  ic.Scale.Sample(elapsed),
		}
	}
	labels := make([]floatingLabelView, len(s.labels))
	for i, tr := range s.labels {
		labels[i] = floatingLabelView{Text: FloatingLabels[i], Opacity: tr.Sample(elapsed)}
	}
	c.JSON(http.StatusOK, gin.H{"icons": icons, "labels": labels})
}

type pointerEventRequest struct {
	Kind        motion.EventKind `json:"kind" binding:"required"`
	X           float64          `json:"x"`
	Y           float64          `json:"y"`
	Interactive bool             `json:"interactive"`
}

type cursorEventsRequest struct {
	Events []pointerEventRequest `json:"events" binding:"required,min=1,max=256,dive"`
}

type cursorView struct {
	motion.CursorSnapshot
	Opacity     float64 `json:"opacity"`
	CursorScale float64 `json:"cursor_scale"`
	DotScale    float64 `json:"dot_scale"`
}

func newCursorView(snap motion.CursorSnapshot) cursorView {
	return cursorView{
		CursorSnapshot: snap,
		Opacity:        snap.Opacity(),
		CursorScale:    snap.CursorScale(),
		DotScale:       snap.DotScale(),
	}
}

// cursorEvents applies a batch of pointer events to the caller's cursor
// and answers with the resulting state.
func (s *server) cursorEvents(c *gin.Context) {
	var req cursorEventsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cur := s.cursors.get(sessionID(c))
	for _, ev := range req.Events {
		cur.Handle(motion.PointerEvent{
			Kind:        ev.Kind,
			X:           ev.X,
			Y:           ev.Y,
			Interactive: ev.Interactive,
		})
	}
	c.JSON(http.StatusOK, newCursorView(cur.Snapshot()))
}

// cursorSnapshot reports the caller's cursor. Sessions only get a stored
// cursor once they post events.
func (s *server) cursorSnapshot(c *gin.Context) {
	cur, ok := s.cursors.lookup(sessionID(c))
	if !ok {
		c.JSON(http.StatusOK, newCursorView(s.cursors.blank()))
		return
	}
	c.JSON(http.StatusOK, newCursorView(cur.Snapshot()))
}

func (s *server) cursorStop(c *gin.Context) {
	if !s.cursors.remove(sessionID(c)) {
		c.JSON(http.StatusNotFound, gin.H{"error": "No cursor for this session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cursor stopped"})
}
