package response

import (
	"html/template"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func setupEngine(t *testing.T, errorPage string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tmpl := template.Must(template.New("ok.html").Parse(`hello {{.}}`))
	template.Must(tmpl.New("broken.html").Parse(`partial output {{index . 5}}`))
	template.Must(tmpl.New(TemplateError).Parse(errorPage))

	r := gin.New()
	r.SetHTMLTemplate(tmpl)
	r.GET("/ok", func(c *gin.Context) { Page(c, "ok.html", "world") })
	r.GET("/broken", func(c *gin.Context) { Page(c, "broken.html", nil) })
	r.GET("/error", func(c *gin.Context) { InternalError(c) })
	return r
}

func TestPage(t *testing.T) {
	r := setupEngine(t, `<h1>500</h1>`)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "hello world", w.Body.String())
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
}

func TestPageTemplateFailureRendersErrorPage(t *testing.T) {
	r := setupEngine(t, `<h1>500</h1>`)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/broken", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "<h1>500</h1>", w.Body.String())
	assert.NotContains(t, w.Body.String(), "partial output")
}

func TestErrorPageTemplateFailure(t *testing.T) {
	r := setupEngine(t, `{{index . 5}}`)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/error", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "500 Internal Server Error", w.Body.String())
}
