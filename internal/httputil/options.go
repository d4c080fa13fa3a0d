package httputil

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"
)

// allow answers an OPTIONS request with the allowed methods in the
// allow header. OPTIONS itself is always allowed.
func allow(c *gin.Context, methods ...string) {
	c.Header("allow", strings.Join(append([]string{http.MethodOptions}, methods...), ", "))
	c.Render(http.StatusNoContent, render.JSON{})
}

func OptionsGet(c *gin.Context) {
	allow(c, http.MethodGet)
}

func OptionsPost(c *gin.Context) {
	allow(c, http.MethodPost)
}

func OptionsGetPost(c *gin.Context) {
	allow(c, http.MethodGet, http.MethodPost)
}

func OptionsGetDelete(c *gin.Context) {
	allow(c, http.MethodGet, http.MethodDelete)
}

func OptionsPatchDelete(c *gin.Context) {
	allow(c, http.MethodPatch, http.MethodDelete)
}
