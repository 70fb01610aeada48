package http

// Register godoc
// @Summary Register a new user
// @Description Create a new customer account
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body object{username=string,email=string,password=string,full_name=string} true "User registration data"
// @Success 201 {object} object{success=bool,data=object{id=int,username=string,email=string,full_name=string,role=string}}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 409 {object} object{success=bool,error=string}
// @Router /api/users/register [post]
func (h *UserHandler) RegisterDoc() {}

// Login godoc
// @Summary User login
// @Description Authenticate user and get JWT token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body object{username=string,password=string} true "Login credentials"
// @Success 200 {object} object{success=bool,data=object{token=string,user=object}}
// @Failure 401 {object} object{success=bool,error=string}
// @Router /api/users/login [post]
func (h *UserHandler) LoginDoc() {}

// Me godoc
// @Summary Get current user
// @Description Get the authenticated user's account
// @Tags Users
// @Security BearerAuth
// @Produce json
// @Success 200 {object} object{success=bool,data=object}
// @Failure 401 {object} object{success=bool,error=string}
// @Router /api/users/me [get]
func (h *UserHandler) MeDoc() {}

// GetProfile godoc
// @Summary Get shipping profile
// @Description Get the authenticated user's saved shipping details
// @Tags Users
// @Security BearerAuth
// @Produce json
// @Success 200 {object} object{success=bool,data=object{user=object,profile=object}}
// @Failure 401 {object} object{success=bool,error=string}
// @Router /api/profile [get]
func (h *UserHandler) GetProfileDoc() {}

// UpdateProfile godoc
// @Summary Update shipping profile
// @Description Update the authenticated user's saved shipping details
// @Tags Users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body object{phone=string,address=string,city=string,state=string,pincode=string} true "Profile data"
// @Success 200 {object} object{success=bool,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Router /api/profile [put]
func (h *UserHandler) UpdateProfileDoc() {}

// ListUsers godoc
// @Summary List all users (admin)
// @Description Admin endpoint to list users with pagination
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Param limit query int false "Limit"
// @Param offset query int false "Offset"
// @Success 200 {object} object{success=bool,data=object{users=array,total=int}}
// @Failure 403 {object} object{success=bool,error=string}
// @Router /api/users [get]
func (h *UserHandler) ListUsersDoc() {}
