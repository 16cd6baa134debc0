package db

import (
	"database/sql"
	"fmt"
)

// Migrate creates the schema when missing. The unique key on
// booking_seats(trip_id, seat_code) is what keeps one seat from being sold
// twice; every booking insert relies on it.
func Migrate(pool *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			name VARCHAR(60) NOT NULL,
			email VARCHAR(255) NOT NULL,
			mobile VARCHAR(100) NOT NULL,
			password_hash VARCHAR(255) NOT NULL,
			role VARCHAR(20) NOT NULL DEFAULT 'passenger',
			operator_name VARCHAR(255) NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
			UNIQUE KEY uniq_email (email)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`,

		`CREATE TABLE IF NOT EXISTS trips (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			operator_id BIGINT NOT NULL,
			name VARCHAR(255) NOT NULL,
			plate_number VARCHAR(50) NOT NULL,
			vehicle_class VARCHAR(50) NOT NULL DEFAULT '',
			price BIGINT NOT NULL,
			travel_date VARCHAR(10) NOT NULL,
			pickup_points TEXT,
			origin VARCHAR(120) NOT NULL,
			destination VARCHAR(120) NOT NULL,
			departure_time VARCHAR(20) NOT NULL DEFAULT '',
			arrival_time VARCHAR(20) NOT NULL DEFAULT '',
			duration VARCHAR(50) NOT NULL DEFAULT '',
			total_seats INT NOT NULL DEFAULT 40,
			rating DOUBLE NOT NULL DEFAULT 0,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			KEY idx_route (origin, destination, travel_date),
			KEY idx_operator (operator_id),
			CONSTRAINT fk_trips_operator FOREIGN KEY (operator_id) REFERENCES users(id)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`,

		`CREATE TABLE IF NOT EXISTS bookings (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			trip_id BIGINT NOT NULL,
			account_id BIGINT NOT NULL,
			total_price BIGINT NOT NULL,
			pickup_point VARCHAR(255) NOT NULL,
			passenger_name VARCHAR(255) NOT NULL,
			passenger_mobile VARCHAR(100) NOT NULL,
			payment_method VARCHAR(30) NOT NULL,
			status VARCHAR(20) NOT NULL DEFAULT 'confirmed',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			KEY idx_trip (trip_id),
			KEY idx_account (account_id),
			CONSTRAINT fk_bookings_trip FOREIGN KEY (trip_id) REFERENCES trips(id),
			CONSTRAINT fk_bookings_account FOREIGN KEY (account_id) REFERENCES users(id)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`,

		`CREATE TABLE IF NOT EXISTS booking_seats (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			booking_id BIGINT NOT NULL,
			trip_id BIGINT NOT NULL,
			seat_code VARCHAR(10) NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			UNIQUE KEY uniq_trip_seat (trip_id, seat_code),
			KEY idx_booking (booking_id),
			CONSTRAINT fk_seats_booking FOREIGN KEY (booking_id) REFERENCES bookings(id) ON DELETE CASCADE
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`,
	}

	for _, ddl := range stmts {
		if _, err := pool.Exec(ddl); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
