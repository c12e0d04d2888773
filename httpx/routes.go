package httpx

import (
	"strconv"
	"strings"

	"github.com/adeilh/rakh-status/status"
)

// StatusRoutes returns routes that expose the status registry under prefix:
// GET <prefix> lists every registered code and GET <prefix>/:code returns
// one of them. Unregistered codes are answered with a thrown 404.
func StatusRoutes(prefix string) []Route {
	prefix = "/" + strings.Trim(prefix, "/")
	if prefix == "/" {
		prefix = ""
	}
	list := prefix
	if list == "" {
		list = "/"
	}
	return []Route{
		{Method: "GET", Path: list, Handler: listStatuses},
		{Method: "GET", Path: prefix + "/:code", Handler: getStatus},
	}
}

func listStatuses(c Context) error {
	return c.JSON(StatusOK, status.All())
}

func getStatus(c Context) error {
	raw := c.Param("code")
	v, err := strconv.Atoi(raw)
	if err != nil {
		return HTTPError(StatusBadRequest, "status code must be an integer")
	}
	info, ok := status.Lookup(status.Code(v))
	if !ok {
		ThrowResponse(status.NotFound, WithResponseJSON(map[string]any{
			"error": "unregistered status code",
			"code":  v,
			"class": status.ClassOf(status.Code(v)),
		}))
	}
	return c.JSON(StatusOK, info)
}
