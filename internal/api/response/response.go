package response

import (
	"bytes"
	"net/http"

	"videolocale-go/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// 页面模板名
const (
	TemplateMain      = "main.html"
	TemplateNoResults = "noresults.html"
	TemplatePlaylist  = "playlist.html"
	TemplateNotFound  = "404.html"
	TemplateError     = "500.html"
)

// bufferedWriter 缓存页面输出，模板执行成功后才写回客户端
type bufferedWriter struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *bufferedWriter) Write(b []byte) (int, error) {
	return w.body.Write(b)
}

func (w *bufferedWriter) WriteString(s string) (int, error) {
	return w.body.WriteString(s)
}

// html 渲染模板；执行失败时丢弃已生成的内容并改为 500 页面
func html(c *gin.Context, code int, name string, data interface{}) {
	original := c.Writer
	buffered := &bufferedWriter{ResponseWriter: original}
	errCount := len(c.Errors)

	func() {
		c.Writer = buffered
		defer func() { c.Writer = original }()
		c.HTML(code, name, data)
	}()

	if len(c.Errors) > errCount {
		logger.Error("Render template failed",
			zap.String("template", name),
			zap.String("path", c.Request.URL.Path),
			zap.Error(c.Errors.Last().Err),
		)
		if name != TemplateError {
			c.HTML(http.StatusInternalServerError, TemplateError, nil)
			return
		}
		c.String(http.StatusInternalServerError, "500 Internal Server Error")
		return
	}

	original.WriteHeader(code)
	_, _ = original.Write(buffered.body.Bytes())
}

// Page 渲染 200 页面
func Page(c *gin.Context, name string, data interface{}) {
	html(c, http.StatusOK, name, data)
}

// NotFound 渲染 404 页面
func NotFound(c *gin.Context) {
	html(c, http.StatusNotFound, TemplateNotFound, nil)
}

// InternalError 渲染 500 页面
func InternalError(c *gin.Context) {
	html(c, http.StatusInternalServerError, TemplateError, nil)
}

// Health 健康检查 JSON
func Health(c *gin.Context, data gin.H) {
	c.JSON(http.StatusOK, data)
}
