package router

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"stitchkart.in/storefront/api/pkg/checkout"
	"stitchkart.in/storefront/api/pkg/global"
	"stitchkart.in/storefront/api/pkg/models"
	"stitchkart.in/storefront/api/pkg/payment"
)

type checkoutStateResponse struct {
	State       checkout.State         `json:"state"`
	FrozenTotal int64                  `json:"frozen_total_minor"`
	Eligible    []models.LineItem      `json:"eligible_items,omitempty"`
	Address     models.ShippingAddress `json:"address"`
	LastFailure string                 `json:"last_failure,omitempty"`
	Order       *models.Order          `json:"order,omitempty"`
}

func stateResponse(m *checkout.Machine) checkoutStateResponse {
	return checkoutStateResponse{
		State:       m.State(),
		FrozenTotal: m.FrozenTotal(),
		Eligible:    m.EligibleItems(),
		Address:     m.Address(),
		LastFailure: m.LastFailure(),
		Order:       m.Order(),
	}
}

// GetCheckoutState reports the machine state and frozen total for rendering
// the active screen.
func GetCheckoutState(c *gin.Context) {
	s := currentSession(c)

	s.Mu.Lock()
	resp := stateResponse(s.Checkout)
	s.Mu.Unlock()

	c.JSON(http.StatusOK, global.SuccessResponse(resp))
}

// BeginCheckout freezes the cart and moves to review. Rejected without a
// single in-stock item.
func BeginCheckout(c *gin.Context) {
	s := currentSession(c)

	s.Mu.Lock()
	err := s.Checkout.ProceedToCheckout(s.Cart.Snapshot())
	resp := stateResponse(s.Checkout)
	s.Mu.Unlock()

	if err != nil {
		if errors.Is(err, checkout.ErrNoEligibleItems) {
			c.JSON(http.StatusConflict, global.ErrorResponse("No items in stock to checkout", []global.ValidationError{
				{Field: "cart", Message: "Every item in the cart is out of stock", Code: "no_eligible_items"},
			}))
			return
		}
		c.JSON(http.StatusConflict, global.ErrorResponse(err.Error(), nil))
		return
	}

	c.JSON(http.StatusOK, global.SuccessResponse(resp))
}

// SubmitAddress records the shipping address and moves to payment. The
// address is opaque to the checkout core.
func SubmitAddress(c *gin.Context) {
	s := currentSession(c)

	var address models.ShippingAddress
	if err := c.ShouldBindJSON(&address); err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid address data", []global.ValidationError{
			{Field: "address", Message: err.Error(), Code: "validation_error"},
		}))
		return
	}

	s.Mu.Lock()
	err := s.Checkout.ProceedToPayment(address)
	resp := stateResponse(s.Checkout)
	s.Mu.Unlock()

	if err != nil {
		c.JSON(http.StatusConflict, global.ErrorResponse(err.Error(), nil))
		return
	}

	c.JSON(http.StatusOK, global.SuccessResponse(resp))
}

// SubmitPayment runs one charge attempt against the gateway. On approval the
// order is placed, appended to the order log, and the cart cleared; on
// decline the machine stays in awaiting_payment and the shopper may retry.
func SubmitPayment(c *gin.Context) {
	s := currentSession(c)

	s.Mu.Lock()
	order, err := s.Checkout.Pay(c.Request.Context(), gateway)
	if order != nil {
		// Order placed: empty the cart and arm a fresh checkout for the
		// next purchase. This holds even if the history write failed; the
		// charge already went through.
		s.Cart.Clear()
	}
	resp := stateResponse(s.Checkout)
	if resp.State == checkout.StatePlaced {
		s.ResetCheckout()
	}
	s.Mu.Unlock()

	if err != nil {
		var payErr *payment.Error
		if errors.As(err, &payErr) {
			c.JSON(http.StatusPaymentRequired, global.ErrorResponse("Payment failed", []global.ValidationError{
				{Field: "payment", Message: payErr.Reason, Code: "payment_failed"},
			}))
			return
		}
		if order != nil {
			// Charge succeeded but the order log write failed. Surface it;
			// the order itself stands.
			log.Printf("Error persisting order %s: %v", order.ID, err)
			c.JSON(http.StatusInternalServerError, global.ErrorResponse("Order placed but could not be saved to history", nil))
			return
		}
		c.JSON(http.StatusConflict, global.ErrorResponse(err.Error(), nil))
		return
	}

	c.JSON(http.StatusOK, global.SuccessResponse(resp))
}

// CancelCheckout abandons the current attempt and returns to the cart. The
// cart itself is untouched.
func CancelCheckout(c *gin.Context) {
	s := currentSession(c)

	s.Mu.Lock()
	s.ResetCheckout()
	resp := stateResponse(s.Checkout)
	s.Mu.Unlock()

	c.JSON(http.StatusOK, global.SuccessResponse(resp))
}
