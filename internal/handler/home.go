package handler // declare the package name; contains HTTP handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// BaseImage is the runtime image named on the landing page.
const BaseImage = "python:3.11-slim"

const homePage = `<!DOCTYPE html>
<html lang="en">
<head>
	<meta charset="UTF-8">
	<meta name="viewport" content="width=device-width, initial-scale=1.0">
	<title>Dockerfile App - Coolify Demo</title>
	<style>
		* { margin: 0; padding: 0; box-sizing: border-box; }
		body {
			font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif;
			background: linear-gradient(135deg, #f093fb 0%, #f5576c 100%);
			min-height: 100vh;
			display: flex;
			justify-content: center;
			align-items: center;
		}
		.container {
			background: white;
			padding: 3rem;
			border-radius: 20px;
			box-shadow: 0 20px 60px rgba(0, 0, 0, 0.3);
			text-align: center;
			max-width: 500px;
		}
		h1 { color: #333; margin-bottom: 1rem; font-size: 2.5rem; }
		p { color: #666; line-height: 1.6; margin-bottom: 1rem; }
		.badge {
			display: inline-block;
			background: #f5576c;
			color: white;
			padding: 0.5rem 1rem;
			border-radius: 20px;
			font-size: 0.9rem;
			margin-top: 1rem;
		}
		code {
			background: #f4f4f4;
			padding: 0.2rem 0.5rem;
			border-radius: 5px;
			font-family: monospace;
		}
		.api-link {
			display: block;
			margin-top: 1.5rem;
			color: #f5576c;
			text-decoration: none;
		}
		.api-link:hover { text-decoration: underline; }
	</style>
</head>
<body>
	<div class="container">
		<h1>🐳 Dockerfile App</h1>
		<p>This Python Flask application is deployed using a <strong>custom Dockerfile</strong>.</p>
		<p>Using: <code>` + BaseImage + `</code> base image</p>
		<span class="badge">Custom Dockerfile</span>
		<a href="/api/info" class="api-link">Check API Endpoint →</a>
	</div>
</body>
</html>
`

// Home serves the landing page.  The document never changes, so it is
// converted to bytes once and every request writes the same slice.
func Home() echo.HandlerFunc {
	body := []byte(homePage)
	return func(c echo.Context) error {
		return c.HTMLBlob(http.StatusOK, body)
	}
}
