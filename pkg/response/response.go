// Package response writes the JSON envelope every endpoint answers with:
//
//	success: {"status":"success","data":...,["count":N]}
//	error:   {"status":"error","message":"..."}
package response

import "github.com/gofiber/fiber/v2"

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

type DataEnvelope struct {
	Status string      `json:"status"`
	Data   interface{} `json:"data"`
}

type ListEnvelope struct {
	Status string      `json:"status"`
	Count  int64       `json:"count"`
	Data   interface{} `json:"data"`
}

type MessageEnvelope struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Data answers 200 with a single payload.
func Data(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusOK).JSON(DataEnvelope{Status: StatusSuccess, Data: data})
}

// List answers 200 with a page of rows and the total matching count.
func List(c *fiber.Ctx, data interface{}, count int64) error {
	return c.Status(fiber.StatusOK).JSON(ListEnvelope{Status: StatusSuccess, Count: count, Data: data})
}

// Message answers 200 with a confirmation message.
func Message(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusOK).JSON(MessageEnvelope{Status: StatusSuccess, Message: msg})
}

// Error answers status with the error envelope.
func Error(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(MessageEnvelope{Status: StatusError, Message: msg})
}
