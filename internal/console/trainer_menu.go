package console

import (
	"context"
	"fmt"

	"gymdesk/internal/models/request_models"
)

func (c *Console) trainerPage(ctx context.Context) {
	fmt.Println("\n--- TRAINER PAGE ---")
	fmt.Println("1. Login")
	fmt.Println("2. Register")
	fmt.Println("3. Back")

	switch c.prompt("Select Option: ") {
	case "1":
		req := request_models.LoginRequest{
			Email:    c.prompt("Email: "),
			Password: c.prompt("Password: "),
		}
		trainerID, _, err := c.trainerService.Login(ctx, req)
		if err != nil {
			fmt.Println("Invalid email or password.")
			return
		}
		c.trainerHome(ctx, trainerID)
	case "2":
		req := request_models.RegisterTrainerRequest{
			FirstName:      c.prompt("First Name: "),
			LastName:       c.prompt("Last Name: "),
			Email:          c.prompt("Email: "),
			Password:       c.prompt("Password: "),
			Specialization: c.prompt("Specialization: "),
		}
		trainerID, err := c.trainerService.Register(ctx, req)
		if err != nil {
			fail()
			return
		}
		fmt.Printf("Registered. Your trainer ID is %d.\n", trainerID)
		c.trainerHome(ctx, trainerID)
	}
}

func (c *Console) trainerHome(ctx context.Context, trainerID int) {
	for {
		fmt.Println("\n--- TRAINER MENU ---")
		fmt.Println("1. View My Schedule")
		fmt.Println("2. Search Member")
		fmt.Println("3. Manage Availability")
		fmt.Println("4. Logout")

		switch c.prompt("Select Option: ") {
		case "1":
			c.viewTrainerSchedule(ctx, trainerID)
		case "2":
			c.searchMember(ctx)
		case "3":
			c.manageAvailability(ctx, trainerID)
		case "4":
			return
		}
	}
}

func (c *Console) viewTrainerSchedule(ctx context.Context, trainerID int) {
	entries, err := c.trainerService.ListSchedule(ctx, trainerID)
	if err != nil {
		fail()
		return
	}
	if len(entries) == 0 {
		fmt.Println("No classes assigned to you.")
		return
	}

	fmt.Println("\n=== My Schedule ===")
	for _, e := range entries {
		fmt.Printf("%s in %s, %s %s-%s\n",
			e.ClassName, e.RoomName, e.DayOfWeek, e.StartTime, e.EndTime)
	}
	c.pause()
}

func (c *Console) searchMember(ctx context.Context) {
	first := c.prompt("First Name: ")
	last := c.prompt("Last Name: ")

	summary, err := c.memberService.SearchByName(ctx, first, last)
	if err != nil {
		fmt.Println("No member found with that name.")
		return
	}

	fmt.Println("\n=== Member ===")
	fmt.Printf("Name:          %s %s\n", summary.FirstName, summary.LastName)
	fmt.Printf("Email:         %s\n", summary.Email)
	fmt.Printf("Fitness Goals: %s\n", summary.FitnessGoals)
	if summary.LatestMetric != nil {
		m := summary.LatestMetric
		fmt.Printf("Latest Metric: weight %.1f kg, height %.1f cm, bodyfat %.1f%%\n",
			m.Weight, m.Height, m.Bodyfat)
	} else {
		fmt.Println("Latest Metric: none recorded")
	}
	c.pause()
}

func (c *Console) manageAvailability(ctx context.Context, trainerID int) {
	for {
		fmt.Println("\n--- AVAILABILITY ---")
		fmt.Println("1. View Availability")
		fmt.Println("2. Add Availability")
		fmt.Println("3. Update Availability")
		fmt.Println("4. Remove Availability")
		fmt.Println("5. Back")

		switch c.prompt("Select Option: ") {
		case "1":
			c.listAvailability(ctx, trainerID)
		case "2":
			req := c.promptAvailability()
			if err := c.trainerService.AddAvailability(ctx, trainerID, req); err != nil {
				fmt.Println("Invalid day or time window.")
				continue
			}
			fmt.Println("Availability added.")
		case "3":
			c.listAvailability(ctx, trainerID)
			availabilityID, ok := c.promptInt("Availability ID to update: ")
			if !ok {
				continue
			}
			req := c.promptAvailability()
			if err := c.trainerService.UpdateAvailability(ctx, availabilityID, req); err != nil {
				fmt.Println("Could not update that window.")
				continue
			}
			fmt.Println("Availability updated.")
		case "4":
			c.listAvailability(ctx, trainerID)
			availabilityID, ok := c.promptInt("Availability ID to remove: ")
			if !ok {
				continue
			}
			if err := c.trainerService.RemoveAvailability(ctx, availabilityID, trainerID); err != nil {
				fmt.Println("Availability not found.")
				continue
			}
			fmt.Println("Availability removed.")
		case "5":
			return
		}
	}
}

func (c *Console) listAvailability(ctx context.Context, trainerID int) {
	entries, err := c.trainerService.ListAvailability(ctx, trainerID)
	if err != nil {
		fail()
		return
	}
	if len(entries) == 0 {
		fmt.Println("No availability windows set.")
		return
	}

	fmt.Println("\n=== Availability ===")
	for _, e := range entries {
		fmt.Printf("[%d] %s %s-%s\n", e.AvailabilityID, e.DayOfWeek, e.StartTime, e.EndTime)
	}
}

func (c *Console) promptAvailability() request_models.AvailabilityRequest {
	return request_models.AvailabilityRequest{
		DayOfWeek: c.prompt("Day of week: "),
		StartTime: c.prompt("Start time (HH:MM): "),
		EndTime:   c.prompt("End time (HH:MM): "),
	}
}
