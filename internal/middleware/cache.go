package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/patrickmn/go-cache"
)

type cachedResponse struct {
	status      int
	contentType string
	body        []byte
}

// Cache memoizes successful GET responses, keyed by the full request URI.
// Used on the catalog endpoints (amenities, icons) whose data changes only
// on seed or admin edits.
func Cache(store *cache.Cache, duration time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Method() != fiber.MethodGet {
			return c.Next()
		}

		key := c.OriginalURL()
		if resp, found := store.Get(key); found {
			cached := resp.(cachedResponse)
			c.Set(fiber.HeaderContentType, cached.contentType)
			return c.Status(cached.status).Send(cached.body)
		}

		if err := c.Next(); err != nil {
			return err
		}

		status := c.Response().StatusCode()
		if status >= 200 && status < 300 {
			body := make([]byte, len(c.Response().Body()))
			copy(body, c.Response().Body())
			store.Set(key, cachedResponse{
				status:      status,
				contentType: string(c.Response().Header.ContentType()),
				body:        body,
			}, duration)
		}

		return nil
	}
}
