package dto

import "time"

type AppointmentListDTO struct {
	ID          string    `json:"id"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	Status      string    `json:"status"`
	UserName    string    `json:"user_name"`
	BarberName  string    `json:"barber_name"`
	ServiceName string    `json:"service_name"`
	CreatedAt   time.Time `json:"created_at"`
}
