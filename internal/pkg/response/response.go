package response

import "github.com/gofiber/fiber/v3"

// DetailBody is the error shape for every failed request.
type DetailBody struct {
	Detail string `json:"detail"`
}

const (
	DetailNotAuthenticated = "Not authenticated"
	DetailInvalidSession   = "Invalid session"
	DetailSessionExpired   = "Session expired"
	DetailInternalError    = "Internal server error"
)

// JSON writes a success payload as-is; handlers return the resource itself,
// not an envelope.
func JSON(c fiber.Ctx, status int, data any) error {
	return c.Status(normalizeStatus(status)).JSON(data)
}

func Detail(c fiber.Ctx, status int, detail string) error {
	st := normalizeStatus(status)
	if detail == "" {
		detail = defaultDetailForStatus(st)
	}
	return c.Status(st).JSON(DetailBody{Detail: detail})
}

func normalizeStatus(status int) int {
	if status < 100 || status > 599 {
		return fiber.StatusInternalServerError
	}
	return status
}

func defaultDetailForStatus(status int) string {
	switch status {
	case fiber.StatusUnauthorized:
		return DetailNotAuthenticated
	case fiber.StatusNotFound:
		return "Not found"
	case fiber.StatusBadRequest:
		return "Bad request"
	case fiber.StatusUnprocessableEntity:
		return "Unprocessable entity"
	default:
		if status >= 500 {
			return DetailInternalError
		}
		return "Error"
	}
}
