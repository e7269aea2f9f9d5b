package console

import (
	"context"
	"fmt"

	"gymdesk/internal/models/request_models"
)

func (c *Console) adminPage(ctx context.Context) {
	req := request_models.AdminLoginRequest{
		Username: c.prompt("Username: "),
		Password: c.prompt("Password: "),
	}
	if _, err := c.adminService.Login(ctx, req); err != nil {
		fmt.Println("Invalid username or password.")
		return
	}

	for {
		fmt.Println("\n--- ADMIN MENU ---")
		fmt.Println("1. Room Management")
		fmt.Println("2. Class Management")
		fmt.Println("3. Schedule Management")
		fmt.Println("4. Logout")

		switch c.prompt("Select Option: ") {
		case "1":
			c.roomManagement(ctx)
		case "2":
			c.classManagement(ctx)
		case "3":
			c.scheduleManagement(ctx)
		case "4":
			return
		}
	}
}

func (c *Console) roomManagement(ctx context.Context) {
	for {
		fmt.Println("\n--- ROOMS ---")
		fmt.Println("1. View Rooms")
		fmt.Println("2. Add Room")
		fmt.Println("3. Remove Room")
		fmt.Println("4. Back")

		switch c.prompt("Select Option: ") {
		case "1":
			c.listRooms(ctx)
		case "2":
			name := c.prompt("Room name: ")
			capacity, ok := c.promptInt("Capacity: ")
			if !ok {
				continue
			}
			roomID, err := c.adminService.AddRoom(ctx, request_models.AddRoomRequest{
				RoomName: name, Capacity: capacity,
			})
			if err != nil {
				fail()
				continue
			}
			fmt.Printf("Room added with ID %d.\n", roomID)
		case "3":
			c.listRooms(ctx)
			roomID, ok := c.promptInt("Room ID to remove: ")
			if !ok {
				continue
			}
			if err := c.adminService.RemoveRoom(ctx, roomID); err != nil {
				fmt.Println("Room not found.")
				continue
			}
			fmt.Println("Room removed.")
		case "4":
			return
		}
	}
}

func (c *Console) listRooms(ctx context.Context) {
	rooms, err := c.adminService.ListRooms(ctx)
	if err != nil {
		fail()
		return
	}
	fmt.Println("\n=== Rooms ===")
	for _, r := range rooms {
		fmt.Printf("[%d] %s (capacity %d)\n", r.RoomID, r.RoomName, r.Capacity)
	}
}

func (c *Console) classManagement(ctx context.Context) {
	for {
		fmt.Println("\n--- CLASSES ---")
		fmt.Println("1. View Classes")
		fmt.Println("2. Add Class")
		fmt.Println("3. Remove Class")
		fmt.Println("4. Back")

		switch c.prompt("Select Option: ") {
		case "1":
			c.listClasses(ctx)
		case "2":
			name := c.prompt("Class name: ")
			description := c.prompt("Description: ")
			duration, ok := c.promptInt("Duration (minutes): ")
			if !ok {
				continue
			}
			classID, err := c.adminService.AddClass(ctx, request_models.AddClassRequest{
				Name: name, Description: description, Duration: duration,
			})
			if err != nil {
				fail()
				continue
			}
			fmt.Printf("Class added with ID %d.\n", classID)
		case "3":
			c.listClasses(ctx)
			classID, ok := c.promptInt("Class ID to remove: ")
			if !ok {
				continue
			}
			if err := c.adminService.RemoveClass(ctx, classID); err != nil {
				fmt.Println("Class not found.")
				continue
			}
			fmt.Println("Class removed.")
		case "4":
			return
		}
	}
}

func (c *Console) listClasses(ctx context.Context) {
	classes, err := c.adminService.ListClasses(ctx)
	if err != nil {
		fail()
		return
	}
	fmt.Println("\n=== Classes ===")
	for _, f := range classes {
		fmt.Printf("[%d] %s, %d min: %s\n", f.ClassID, f.Name, f.Duration, f.Description)
	}
}

func (c *Console) scheduleManagement(ctx context.Context) {
	for {
		fmt.Println("\n--- SCHEDULES ---")
		fmt.Println("1. View Schedules")
		fmt.Println("2. Add Schedule")
		fmt.Println("3. Remove Schedule")
		fmt.Println("4. Back")

		switch c.prompt("Select Option: ") {
		case "1":
			c.listSchedules(ctx)
		case "2":
			c.addSchedule(ctx)
		case "3":
			c.listSchedules(ctx)
			scheduleID, ok := c.promptInt("Schedule ID to remove: ")
			if !ok {
				continue
			}
			if err := c.schedulingService.RemoveSchedule(ctx, scheduleID); err != nil {
				fmt.Println("Schedule not found.")
				continue
			}
			fmt.Println("Schedule removed.")
		case "4":
			return
		}
	}
}

func (c *Console) listSchedules(ctx context.Context) {
	schedules, err := c.schedulingService.ListSchedules(ctx)
	if err != nil {
		fail()
		return
	}
	fmt.Println("\n=== Schedules ===")
	for _, s := range schedules {
		fmt.Printf("[%d] %s in %s with %s, %s %s-%s\n",
			s.ScheduleID, s.ClassName, s.RoomName, s.TrainerName,
			s.DayOfWeek, s.StartTime, s.EndTime)
	}
}

// addSchedule walks the admin through the availability engine: pick a window,
// then choose from the classes, rooms and trainers that fit it.
func (c *Console) addSchedule(ctx context.Context) {
	day := c.prompt("Day of week: ")
	start := c.prompt("Start time (HH:MM): ")
	end := c.prompt("End time (HH:MM): ")

	classes, err := c.schedulingService.FindClassesFittingDuration(ctx, start, end)
	if err != nil {
		fmt.Println("Invalid day or time window.")
		return
	}
	if len(classes) == 0 {
		fmt.Println("No classes fit that window.")
		return
	}
	fmt.Println("\n=== Classes ===")
	for _, f := range classes {
		fmt.Printf("[%d] %s (%d min)\n", f.ClassID, f.Name, f.Duration)
	}

	rooms, err := c.schedulingService.FindAvailableRooms(ctx, start, end)
	if err != nil {
		fail()
		return
	}
	if len(rooms) == 0 {
		fmt.Println("No rooms are free in that window.")
		return
	}
	fmt.Println("\n=== Rooms ===")
	for _, r := range rooms {
		fmt.Printf("[%d] %s (capacity %d)\n", r.RoomID, r.RoomName, r.Capacity)
	}

	trainers, err := c.schedulingService.FindAvailableTrainers(ctx, day, start, end)
	if err != nil {
		fmt.Println("Invalid day or time window.")
		return
	}
	if len(trainers) == 0 {
		fmt.Println("No trainers are available in that window.")
		return
	}
	fmt.Println("\n=== Trainers ===")
	for _, t := range trainers {
		fmt.Printf("[%d] %s %s (%s)\n", t.TrainerID, t.FirstName, t.LastName, t.Specialization)
	}

	classID, ok := c.promptInt("Class ID: ")
	if !ok {
		return
	}
	roomID, ok := c.promptInt("Room ID: ")
	if !ok {
		return
	}
	trainerID, ok := c.promptInt("Trainer ID: ")
	if !ok {
		return
	}

	scheduleID, err := c.schedulingService.CreateSchedule(ctx, request_models.CreateScheduleRequest{
		ClassID:   classID,
		RoomID:    roomID,
		TrainerID: trainerID,
		DayOfWeek: day,
		StartTime: start,
		EndTime:   end,
	})
	if err != nil {
		fail()
		return
	}
	fmt.Printf("Schedule created with ID %d.\n", scheduleID)
}
