package docs

import (
	_ "embed"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed openapi.yaml
var openapiDoc []byte

const uiPage = `<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>Customer Matrix API</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css">
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>SwaggerUIBundle({ url: "/api-docs/openapi.yaml", dom_id: "#swagger-ui" });</script>
</body>
</html>`

// Register 挂载接口文档：/api-docs 为交互页面，/api-docs/openapi.yaml 为原始描述
func Register(r gin.IRouter) {
	r.GET("/api-docs", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(uiPage))
	})
	r.GET("/api-docs/openapi.yaml", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/yaml", openapiDoc)
	})
}
