package main

// @title           DriversEd Admin API
// @version         1.0
// @description     API for issuing, listing, editing and verifying driver-training certificates

// @contact.name   API Support

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description JWT authentication header using the Bearer scheme. Example: "Bearer {token}"
