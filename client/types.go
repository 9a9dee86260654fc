package client

// Wire types for the OpenShop backend. Field names follow the backend's JSON
// contract (camelCase) exactly.

// UserRole enumerates the backend's user roles.
type UserRole string

const (
	RoleCustomer UserRole = "CUSTOMER"
	RoleSeller   UserRole = "SELLER"
	RoleAdmin    UserRole = "ADMIN"
)

// UserDTO is the backend's user representation.
type UserDTO struct {
	ID        int64    `json:"id"`
	Username  string   `json:"username"`
	Name      string   `json:"name"`
	Email     string   `json:"email"`
	Role      UserRole `json:"role"`
	IsActive  bool     `json:"isActive"`
	CreatedAt string   `json:"createdAt"`
	UpdatedAt string   `json:"updatedAt"`
}

// LoginRequest is the credentials payload for login. Username may be a
// username or an email address.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest is the payload for account creation.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=64"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"required,oneof=CUSTOMER SELLER"`
	Name     string `json:"name" validate:"required"`
}

// AuthResponse is returned by login and register.
type AuthResponse struct {
	Token     string  `json:"token"`
	ExpiresIn int64   `json:"expiresIn"`
	User      UserDTO `json:"user"`
}

// UpdateProfileRequest carries partial profile updates. Nil fields are omitted.
type UpdateProfileRequest struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty" validate:"omitempty,email"`
}

// ProductStatus enumerates catalog product states.
type ProductStatus string

const (
	ProductActive     ProductStatus = "ACTIVE"
	ProductInactive   ProductStatus = "INACTIVE"
	ProductOutOfStock ProductStatus = "OUT_OF_STOCK"
)

// Product is a catalog product owned by a seller.
type Product struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Category    string        `json:"category"`
	Price       float64       `json:"price"`
	Currency    string        `json:"currency"`
	SKU         string        `json:"sku"`
	SellerID    int64         `json:"sellerId"`
	ImageURL    string        `json:"imageUrl,omitempty"`
	Status      ProductStatus `json:"status"`
	CreatedAt   string        `json:"createdAt"`
	UpdatedAt   string        `json:"updatedAt"`
}

// CreateProductInput is the seller-side payload for creating a product.
type CreateProductInput struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description" validate:"required"`
	Category    string  `json:"category" validate:"required"`
	Price       float64 `json:"price" validate:"required,gte=0"`
	Currency    string  `json:"currency" validate:"required,len=3"`
	SKU         string  `json:"sku" validate:"required"`
	ImageURL    string  `json:"imageUrl,omitempty" validate:"omitempty,url"`
}

// UpdateProductInput carries partial product updates. Nil fields are omitted.
type UpdateProductInput struct {
	Name        *string        `json:"name,omitempty"`
	Description *string        `json:"description,omitempty"`
	Category    *string        `json:"category,omitempty"`
	Price       *float64       `json:"price,omitempty" validate:"omitempty,gte=0"`
	Currency    *string        `json:"currency,omitempty" validate:"omitempty,len=3"`
	SKU         *string        `json:"sku,omitempty"`
	ImageURL    *string        `json:"imageUrl,omitempty" validate:"omitempty,url"`
	Status      *ProductStatus `json:"status,omitempty"`
}

// CartItemDTO is one line of the backend cart response.
type CartItemDTO struct {
	ID        *int64  `json:"id,omitempty"`
	ProductID string  `json:"productId"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// CartDTO is the backend cart shape returned by GET /api/cart and
// DELETE /api/cart/items. Mutation responses additionally carry an internal
// id and timestamps, which this client never relies on.
type CartDTO struct {
	ID        *int64        `json:"id,omitempty"`
	UserID    int64         `json:"userId"`
	Items     []CartItemDTO `json:"items"`
	CreatedAt string        `json:"createdAt,omitempty"`
	UpdatedAt string        `json:"updatedAt,omitempty"`
}

// CartUpdateRequest is the signed-quantity delta payload for
// POST /api/cart/items. A negative quantity decreases the line; the backend
// removes lines that reach zero or below.
type CartUpdateRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// OrderStatus enumerates order lifecycle states.
type OrderStatus string

const (
	OrderPending          OrderStatus = "PENDING"
	OrderPaymentInitiated OrderStatus = "PAYMENT_INITIATED"
	OrderConfirmed        OrderStatus = "CONFIRMED"
	OrderShipped          OrderStatus = "SHIPPED"
	OrderDelivered        OrderStatus = "DELIVERED"
	OrderCancelled        OrderStatus = "CANCELLED"
)

// OrderItem is a line within a placed order.
type OrderItem struct {
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
	Subtotal    float64 `json:"subtotal"`
}

// Order is a placed order as tracked by the backend.
type Order struct {
	ID              string      `json:"id"`
	UserID          int64       `json:"userId"`
	Status          OrderStatus `json:"status"`
	TotalPrice      float64     `json:"totalPrice"`
	Currency        string      `json:"currency"`
	Items           []OrderItem `json:"items"`
	CheckoutBatchID string      `json:"checkoutBatchId,omitempty"`
	CreatedAt       string      `json:"createdAt"`
	UpdatedAt       string      `json:"updatedAt,omitempty"`
}

// CreateOrderRequest carries the shipping details of a checkout.
type CreateOrderRequest struct {
	ShippingAddress string `json:"shippingAddress,omitempty"`
	City            string `json:"city,omitempty"`
	State           string `json:"state,omitempty"`
	ZipCode         string `json:"zipCode,omitempty"`
	Country         string `json:"country,omitempty"`
	PhoneNumber     string `json:"phoneNumber,omitempty"`
}

// PaymentStatus enumerates payment lifecycle states.
type PaymentStatus string

const (
	PaymentInitiated PaymentStatus = "INITIATED"
	PaymentPending   PaymentStatus = "PENDING"
	PaymentSuccess   PaymentStatus = "SUCCESS"
	PaymentFailed    PaymentStatus = "FAILED"
	PaymentRefunded  PaymentStatus = "REFUNDED"
)

// Payment is the backend's payment record.
type Payment struct {
	ID             string        `json:"id"`
	OrderID        string        `json:"orderId"`
	UserID         int64         `json:"userId"`
	Amount         float64       `json:"amount"`
	Status         PaymentStatus `json:"status"`
	TransactionID  string        `json:"transactionId,omitempty"`
	Timestamp      string        `json:"timestamp"`
	IdempotencyKey string        `json:"idempotencyKey,omitempty"`
}

// InitiatePaymentRequest starts payment processing for an order.
type InitiatePaymentRequest struct {
	OrderID string        `json:"orderId" validate:"required"`
	UserID  int64         `json:"userId" validate:"required"`
	Status  PaymentStatus `json:"status,omitempty"`
}

// PaymentAck is the acknowledgement returned by payment initiation.
type PaymentAck struct {
	OrderID string  `json:"orderId"`
	UserID  int64   `json:"userId"`
	Status  string  `json:"status"`
	Amount  float64 `json:"amount,omitempty"`
}

// Inventory is the stock record for a product.
type Inventory struct {
	ID               int64  `json:"id"`
	ProductID        string `json:"productId"`
	Quantity         int    `json:"quantity"`
	ReservedQuantity int    `json:"reservedQuantity"`
	CreatedAt        string `json:"createdAt"`
	UpdatedAt        string `json:"updatedAt"`
}

// InventoryRequest creates or updates stock for a product.
type InventoryRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"gte=0"`
}

// ShipmentStatus enumerates shipment lifecycle states.
type ShipmentStatus string

const (
	ShipmentPending   ShipmentStatus = "PENDING"
	ShipmentInTransit ShipmentStatus = "IN_TRANSIT"
	ShipmentDelivered ShipmentStatus = "DELIVERED"
	ShipmentReturned  ShipmentStatus = "RETURNED"
)

// Shipment is the backend's shipment record for an order.
type Shipment struct {
	ID             string         `json:"id"`
	OrderID        string         `json:"orderId"`
	UserID         int64          `json:"userId"`
	Address        string         `json:"address"`
	Status         ShipmentStatus `json:"status"`
	TrackingNumber string         `json:"trackingNumber,omitempty"`
	CreatedAt      string         `json:"createdAt"`
	UpdatedAt      string         `json:"updatedAt"`
}
