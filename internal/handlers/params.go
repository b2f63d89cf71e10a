package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/frontdesk/internal/domain/appointment"
	"github.com/BruksfildServices01/frontdesk/internal/httperr"
)

// viewParams reads the list view state from the query string. Unknown values
// fall back to defaults; the status filter is checked later.
func viewParams(c *gin.Context) domain.ViewParams {
	p := domain.DefaultViewParams()
	p.Search = c.Query("search")
	p.Status = domain.Status(c.Query("status"))
	if s := c.Query("sort"); s != "" {
		p.Sort = domain.SortMode(s)
	}
	if n, err := strconv.Atoi(c.Query("page_size")); err == nil {
		p.PageSize = n
	}
	if n, err := strconv.Atoi(c.Query("page")); err == nil {
		p.Page = n
	}
	return p.Normalize()
}

func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidRequest, "Invalid id")
		return uuid.Nil, false
	}
	return id, true
}
