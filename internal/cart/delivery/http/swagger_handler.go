package http

// GetCart godoc
// @Summary Get cart
// @Description Get the authenticated user's cart with line totals
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Success 200 {object} object{success=bool,data=object{cart=object,cart_items=int,cart_total=string}}
// @Failure 401 {object} object{success=bool,error=string}
// @Router /api/cart [get]
func (h *CartHandler) GetCartDoc() {}

// AddItem godoc
// @Summary Add product to cart
// @Description Add a product to the cart, clamping the quantity to available stock
// @Tags Cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body object{product_id=int,quantity=int} true "Product and quantity"
// @Success 200 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/cart/items [post]
func (h *CartHandler) AddItemDoc() {}

// UpdateItem godoc
// @Summary Update cart item quantity
// @Description Set a cart line's quantity; zero removes the line
// @Tags Cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Cart item ID"
// @Param request body object{quantity=int} true "New quantity"
// @Success 200 {object} object{success=bool,data=object}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/cart/items/{id} [put]
func (h *CartHandler) UpdateItemDoc() {}

// RemoveItem godoc
// @Summary Remove cart item
// @Description Remove a line from the authenticated user's cart
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Param id path int true "Cart item ID"
// @Success 200 {object} object{success=bool,message=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/cart/items/{id} [delete]
func (h *CartHandler) RemoveItemDoc() {}
