package view

// User-facing notification texts.
const (
	MsgListFailed   = "Could not list products."
	MsgDetailFailed = "Could not load product details."
	MsgDeleted      = "Product deleted successfully."
	MsgDeleteFailed = "Could not delete product."

	MsgCreated          = "Product registered successfully."
	MsgCreateFailed     = "Could not register product."
	MsgUpdated          = "Product updated successfully."
	MsgUpdateFailed     = "Could not update product."
	MsgLoadForEditError = "Could not load the product for editing."
	MsgInvalidProductID = "Invalid product identifier."

	MsgSignInFailed = "Invalid username or password."
	MsgSignedUp     = "Account created. You can sign in now."
	MsgSignUpFailed = "Could not create the account."
)
