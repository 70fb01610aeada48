package http

// GetCheckout godoc
// @Summary Checkout summary
// @Description Get the cart contents and shipping details prefilled from the user's profile
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Success 200 {object} object{success=bool,data=object{cart=object,prefill=object}}
// @Failure 400 {object} object{success=bool,error=string}
// @Router /api/checkout [get]
func (h *OrderHandler) GetCheckoutDoc() {}

// PlaceOrder godoc
// @Summary Place order
// @Description Convert the cart into an order, snapshotting prices and decrementing stock
// @Tags Orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body object{full_name=string,email=string,phone=string,address=string,city=string,state=string,pincode=string,payment_method=string} true "Shipping details"
// @Success 201 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Router /api/checkout [post]
func (h *OrderHandler) PlaceOrderDoc() {}

// ListOrders godoc
// @Summary List my orders
// @Description List the authenticated user's orders, newest first
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Success 200 {object} object{success=bool,data=array}
// @Router /api/orders [get]
func (h *OrderHandler) ListOrdersDoc() {}

// GetOrder godoc
// @Summary Get order
// @Description Get one of the authenticated user's orders with its items
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} object{success=bool,data=object}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/orders/{id} [get]
func (h *OrderHandler) GetOrderDoc() {}

// UpdateStatus godoc
// @Summary Update order status (admin)
// @Description Admin endpoint to move an order through its fulfilment states
// @Tags Admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Param request body object{status=string} true "New status (processing/shipped/delivered/cancelled)"
// @Success 200 {object} object{success=bool,message=string}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/admin/orders/{id}/status [patch]
func (h *OrderHandler) UpdateStatusDoc() {}
