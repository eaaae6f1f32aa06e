package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hiroshi-tamura/file-agent/internal/infrastructure/monitoring"
	"github.com/hiroshi-tamura/file-agent/internal/providers/filesystem"
	"github.com/hiroshi-tamura/file-agent/internal/shared/auth"
)

// ErrInvalidToken is the fixed auth failure message; callers match on it.
const ErrInvalidToken = "authentication error: invalid token"

// healthMessage is returned by the unauthenticated health endpoint.
const healthMessage = "File Agent is running (token required for operations)"

// Handlers contains all file operation endpoints. The secret digest is
// computed once at server construction and never recomputed per request.
type Handlers struct {
	digest  string
	files   *filesystem.Service
	walker  *filesystem.Walker
	metrics *monitoring.Metrics
}

// NewHandlers creates the handler set around a precomputed token digest.
func NewHandlers(digest string, files *filesystem.Service, walker *filesystem.Walker, metrics *monitoring.Metrics) *Handlers {
	return &Handlers{
		digest:  digest,
		files:   files,
		walker:  walker,
		metrics: metrics,
	}
}

// bind decodes the JSON body into req. A malformed body is reported through
// the envelope like any other failure, still with status 200.
func (h *Handlers) bind(c *gin.Context, op string, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		h.metrics.RecordOperation(op, monitoring.OutcomeError)
		c.JSON(http.StatusOK, Failure(err.Error()))
		return false
	}
	return true
}

// authorize verifies the caller's token and short-circuits the request
// before any filesystem access when it does not match.
func (h *Handlers) authorize(c *gin.Context, op, token string) bool {
	if !auth.Verify(token, h.digest) {
		h.metrics.RecordOperation(op, monitoring.OutcomeDenied)
		c.JSON(http.StatusOK, Failure(ErrInvalidToken))
		return false
	}
	return true
}

// respond wraps an operation result in the envelope. Failures ride in the
// same 200 response; callers inspect the success flag, not the status code.
func (h *Handlers) respond(c *gin.Context, op string, data any, err error) {
	if err != nil {
		h.metrics.RecordOperation(op, monitoring.OutcomeError)
		c.JSON(http.StatusOK, Failure(err.Error()))
		return
	}
	h.metrics.RecordOperation(op, monitoring.OutcomeSuccess)
	c.JSON(http.StatusOK, Success(data))
}

// Health reports that the agent is up. It requires no token so the
// companion application can probe for a running instance before
// authenticating.
func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, Success(healthMessage))
}

// Read returns a file's contents as UTF-8 text.
func (h *Handlers) Read(c *gin.Context) {
	const op = "read"

	var req ReadRequest
	if !h.bind(c, op, &req) || !h.authorize(c, op, req.Token) {
		return
	}

	content, err := h.files.Read(req.Path)
	h.respond(c, op, content, err)
}

// ReadBinary returns a file's raw contents, base64 encoded.
func (h *Handlers) ReadBinary(c *gin.Context) {
	const op = "read_binary"

	var req ReadRequest
	if !h.bind(c, op, &req) || !h.authorize(c, op, req.Token) {
		return
	}

	encoded, err := h.files.ReadBinary(req.Path)
	h.respond(c, op, encoded, err)
}

// Write overwrites (or creates) a file with the supplied text.
func (h *Handlers) Write(c *gin.Context) {
	const op = "write"

	var req WriteRequest
	if !h.bind(c, op, &req) || !h.authorize(c, op, req.Token) {
		return
	}

	err := h.files.Write(req.Path, req.Content)
	h.respond(c, op, "File written successfully", err)
}

// WriteBinary decodes a base64 payload and overwrites (or creates) a file
// with the raw bytes.
func (h *Handlers) WriteBinary(c *gin.Context) {
	const op = "write_binary"

	var req WriteBinaryRequest
	if !h.bind(c, op, &req) || !h.authorize(c, op, req.Token) {
		return
	}

	err := h.files.WriteBinary(req.Path, req.Content)
	h.respond(c, op, "Binary file written successfully", err)
}

// Delete removes a file, or a directory with all its contents.
func (h *Handlers) Delete(c *gin.Context) {
	const op = "delete"

	var req DeleteRequest
	if !h.bind(c, op, &req) || !h.authorize(c, op, req.Token) {
		return
	}

	err := h.files.Delete(req.Path)
	h.respond(c, op, "Deleted successfully", err)
}

// Search walks a directory tree and returns entries whose names contain the
// pattern, case-insensitively. The walk is bounded and never fails; at worst
// it returns an empty list.
func (h *Handlers) Search(c *gin.Context) {
	const op = "search"

	var req SearchRequest
	if !h.bind(c, op, &req) || !h.authorize(c, op, req.Token) {
		return
	}

	h.respond(c, op, h.walker.Search(req.Directory, req.Pattern), nil)
}

// List enumerates the immediate children of a directory. Path and token
// arrive as query parameters; the path defaults to the working directory.
func (h *Handlers) List(c *gin.Context) {
	const op = "list"

	if !h.authorize(c, op, c.Query("token")) {
		return
	}

	infos, err := h.walker.List(c.DefaultQuery("path", "."))
	h.respond(c, op, infos, err)
}

// Create makes an empty file or a directory, including missing ancestors.
func (h *Handlers) Create(c *gin.Context) {
	const op = "create"

	var req CreateRequest
	if !h.bind(c, op, &req) || !h.authorize(c, op, req.Token) {
		return
	}

	confirmation := "File created successfully"
	if req.IsDirectory {
		confirmation = "Directory created successfully"
	}

	err := h.files.Create(req.Path, req.IsDirectory)
	h.respond(c, op, confirmation, err)
}

// Move renames source to destination, creating missing destination
// ancestors first.
func (h *Handlers) Move(c *gin.Context) {
	const op = "move"

	var req MoveRequest
	if !h.bind(c, op, &req) || !h.authorize(c, op, req.Token) {
		return
	}

	err := h.files.Move(req.Source, req.Destination)
	h.respond(c, op, "File moved successfully", err)
}

// Copy duplicates source at destination, recursively for directories.
func (h *Handlers) Copy(c *gin.Context) {
	const op = "copy"

	var req CopyRequest
	if !h.bind(c, op, &req) || !h.authorize(c, op, req.Token) {
		return
	}

	err := h.files.Copy(req.Source, req.Destination)
	h.respond(c, op, "File copied successfully", err)
}
