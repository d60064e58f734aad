package main

// @title EMI Store API
// @version 1.0
// @description REST API for an EMI-based smartphone e-commerce catalog with flexible payment plans.

// @contact.name API Support

// @host localhost:8080
// @BasePath /

// @tag.name Products
// @tag.description Product management endpoints
// @tag.name Variants
// @tag.description Product variant management
// @tag.name EMI Plans
// @tag.description EMI payment plan management
