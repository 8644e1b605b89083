package cartControllers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hammadi-dev/cartly-api/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func guestContext(target string, params gin.Params) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodDelete, target, nil)
	c.Params = params
	return c, w
}

func TestRemoveGuestCartLine(t *testing.T) {
	sessions := session.NewStore(time.Minute)
	sessions.Set("sess-1", []session.Line{
		{ProductID: 7, Quantity: 2},
		{ProductID: 9, Quantity: 1},
	})

	c, w := guestContext("/guest/cart/7?session_id=sess-1",
		gin.Params{{Key: "product_id", Value: "7"}})
	RemoveGuestCartLine(sessions)(c)

	assert.Equal(t, http.StatusOK, w.Code)
	lines := sessions.Get("sess-1")
	require.Len(t, lines, 1)
	assert.Equal(t, uint(9), lines[0].ProductID)
}

func TestRemoveGuestCartLineNotFound(t *testing.T) {
	sessions := session.NewStore(time.Minute)
	sessions.Set("sess-1", []session.Line{{ProductID: 9, Quantity: 1}})

	c, w := guestContext("/guest/cart/7?session_id=sess-1",
		gin.Params{{Key: "product_id", Value: "7"}})
	RemoveGuestCartLine(sessions)(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Len(t, sessions.Get("sess-1"), 1)
}

func TestRemoveGuestCartLineRequiresSession(t *testing.T) {
	sessions := session.NewStore(time.Minute)

	c, w := guestContext("/guest/cart/7",
		gin.Params{{Key: "product_id", Value: "7"}})
	RemoveGuestCartLine(sessions)(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestClearGuestCart(t *testing.T) {
	sessions := session.NewStore(time.Minute)
	sessions.Set("sess-1", []session.Line{{ProductID: 7, Quantity: 2}})

	c, w := guestContext("/guest/cart?session_id=sess-1", nil)
	ClearGuestCart(sessions)(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, sessions.Get("sess-1"))
}
