package router

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/bson"
	"golang.org/x/crypto/bcrypt"

	"stitchkart.in/storefront/api/pkg/global"
	"stitchkart.in/storefront/api/pkg/models"
	"stitchkart.in/storefront/api/pkg/mongo"
)

func SignUpCustomer(c *gin.Context) {
	var req models.SignUpRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid request data", []global.ValidationError{
			{Field: "request", Message: err.Error(), Code: "validation_error"},
		}))
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to process password", nil))
		return
	}

	customer := &models.Customer{
		Email:         req.Email,
		Password:      string(hashedPassword),
		Name:          req.Name,
		Phone:         req.Phone,
		AccountStatus: "active",
	}
	customer.SetTimestamps()

	createdCustomer, err := mongo.CreateCustomer(c.Request.Context(), customer)
	if err != nil {
		if errors.Is(err, mongo.ErrEmailExists) {
			c.JSON(http.StatusConflict, global.ErrorResponse("Email already registered", []global.ValidationError{
				{Field: "email", Message: "This email is already in use", Code: "duplicate_email"},
			}))
			return
		}
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to create customer", nil))
		return
	}

	c.JSON(http.StatusCreated, global.SuccessResponse(createdCustomer))
}

func SignInCustomer(c *gin.Context) {
	var req models.SignInRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid request data", []global.ValidationError{
			{Field: "request", Message: err.Error(), Code: "validation_error"},
		}))
		return
	}

	customer, err := mongo.GetCustomerByEmail(c.Request.Context(), req.Email)
	if err != nil {
		if errors.Is(err, mongo.ErrCustomerNotFound) {
			c.JSON(http.StatusUnauthorized, global.ErrorResponse("Invalid email or password", nil))
			return
		}
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to sign in", nil))
		return
	}

	if !customer.IsActive() {
		c.JSON(http.StatusForbidden, global.ErrorResponse("Account is not active", nil))
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(customer.Password), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, global.ErrorResponse("Invalid email or password", nil))
		return
	}

	c.JSON(http.StatusOK, global.SuccessResponse(customer))
}

// GetCustomerProfile fetches a customer by object id.
func GetCustomerProfile(c *gin.Context) {
	id, err := bson.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid customer id", []global.ValidationError{
			{Field: "id", Message: "Must be a valid object id", Code: "invalid_id"},
		}))
		return
	}

	customer, err := mongo.GetCustomerByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, mongo.ErrCustomerNotFound) {
			c.JSON(http.StatusNotFound, global.ErrorResponse("Customer not found", nil))
			return
		}
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to fetch customer", nil))
		return
	}

	c.JSON(http.StatusOK, global.SuccessResponse(customer))
}
