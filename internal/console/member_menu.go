package console

import (
	"context"
	"fmt"

	"gymdesk/internal/models/request_models"
)

func (c *Console) memberPage(ctx context.Context) {
	fmt.Println("\n--- MEMBER PAGE ---")
	fmt.Println("1. Login")
	fmt.Println("2. Register")
	fmt.Println("3. Back")

	switch c.prompt("Select Option: ") {
	case "1":
		req := request_models.LoginRequest{
			Email:    c.prompt("Email: "),
			Password: c.prompt("Password: "),
		}
		memberID, _, err := c.memberService.Login(ctx, req)
		if err != nil {
			fmt.Println("Invalid email or password.")
			return
		}
		c.memberHome(ctx, memberID)
	case "2":
		c.registerMember(ctx)
	}
}

func (c *Console) registerMember(ctx context.Context) {
	req := request_models.RegisterMemberRequest{
		FirstName:    c.prompt("First Name: "),
		LastName:     c.prompt("Last Name: "),
		Email:        c.prompt("Email: "),
		Password:     c.prompt("Password: "),
		DateOfBirth:  c.prompt("Date of Birth (YYYY-MM-DD): "),
		Gender:       c.prompt("Gender: "),
		FitnessGoals: c.prompt("Fitness Goals: "),
	}
	memberID, err := c.memberService.Register(ctx, req)
	if err != nil {
		fail()
		return
	}
	fmt.Printf("Registered. Your member ID is %d.\n", memberID)
	c.memberHome(ctx, memberID)
}

func (c *Console) memberHome(ctx context.Context, memberID int) {
	for {
		fmt.Println("\n--- MEMBER MENU ---")
		fmt.Println("1. View Dashboard")
		fmt.Println("2. Update Profile")
		fmt.Println("3. Manage Bookings")
		fmt.Println("4. Logout")

		switch c.prompt("Select Option: ") {
		case "1":
			c.viewDashboard(ctx, memberID)
		case "2":
			c.updateProfile(ctx, memberID)
		case "3":
			c.manageBookings(ctx, memberID)
		case "4":
			return
		}
	}
}

func (c *Console) viewDashboard(ctx context.Context, memberID int) {
	profile, err := c.dashboardService.GetMemberProfile(ctx, memberID)
	if err != nil {
		fail()
		return
	}

	fmt.Println("\n=== Dashboard ===")
	fmt.Printf("Name:          %s %s\n", profile.FirstName, profile.LastName)
	fmt.Printf("Email:         %s\n", profile.Email)
	fmt.Printf("Fitness Goals: %s\n", profile.FitnessGoals)
	if profile.LatestMetric != nil {
		m := profile.LatestMetric
		fmt.Printf("Latest Metric: weight %.1f kg, height %.1f cm, bodyfat %.1f%% (recorded %s)\n",
			m.Weight, m.Height, m.Bodyfat, m.RecordedAt.Format("2006-01-02"))
	} else {
		fmt.Println("Latest Metric: none recorded")
	}
	fmt.Printf("Total Bookings: %d\n", profile.TotalBookings)
	c.pause()
}

func (c *Console) updateProfile(ctx context.Context, memberID int) {
	fmt.Println("\n--- UPDATE PROFILE ---")
	fmt.Println("1. Update Fitness Goals")
	fmt.Println("2. Add Health Metric")
	fmt.Println("3. Update Personal Info")
	fmt.Println("4. Back")

	switch c.prompt("Select Option: ") {
	case "1":
		goals := c.prompt("New fitness goals: ")
		if err := c.memberService.UpdateFitnessGoals(ctx, memberID, goals); err != nil {
			fail()
			return
		}
		fmt.Println("Fitness goals updated.")
	case "2":
		weight, ok := c.promptFloat("Weight (kg): ")
		if !ok {
			return
		}
		height, ok := c.promptFloat("Height (cm): ")
		if !ok {
			return
		}
		bodyfat, ok := c.promptFloat("Bodyfat (%): ")
		if !ok {
			return
		}
		req := request_models.AddHealthMetricRequest{Weight: weight, Height: height, Bodyfat: bodyfat}
		if err := c.memberService.AddHealthMetric(ctx, memberID, req); err != nil {
			fail()
			return
		}
		fmt.Println("Health metric recorded.")
	case "3":
		c.updatePersonalInfo(ctx, memberID)
	}
}

var personalFields = []struct {
	label string
	field request_models.MemberField
}{
	{"First Name", request_models.FieldFirstName},
	{"Last Name", request_models.FieldLastName},
	{"Email", request_models.FieldEmail},
	{"Password", request_models.FieldPassword},
	{"Date of Birth", request_models.FieldDateOfBirth},
	{"Gender", request_models.FieldGender},
}

func (c *Console) updatePersonalInfo(ctx context.Context, memberID int) {
	fmt.Println("\n--- PERSONAL INFO ---")
	for i, f := range personalFields {
		fmt.Printf("%d. %s\n", i+1, f.label)
	}

	choice, ok := c.promptInt("Field to update: ")
	if !ok || choice < 1 || choice > len(personalFields) {
		fmt.Println("Unknown field.")
		return
	}
	selected := personalFields[choice-1]

	req := request_models.UpdatePersonalInfoRequest{
		Field: selected.field,
		Value: c.prompt("New value: "),
	}
	if err := c.memberService.UpdatePersonalInfo(ctx, memberID, req); err != nil {
		fail()
		return
	}
	fmt.Printf("%s updated.\n", selected.label)
}

func (c *Console) manageBookings(ctx context.Context, memberID int) {
	for {
		fmt.Println("\n--- BOOKINGS ---")
		fmt.Println("1. View Open Classes")
		fmt.Println("2. Book a Class")
		fmt.Println("3. View My Bookings")
		fmt.Println("4. Cancel a Booking")
		fmt.Println("5. Back")

		switch c.prompt("Select Option: ") {
		case "1":
			c.listOpenSchedules(ctx)
		case "2":
			c.bookClass(ctx, memberID)
		case "3":
			c.listMyBookings(ctx, memberID)
		case "4":
			bookingID, ok := c.promptInt("Booking ID to cancel: ")
			if !ok {
				continue
			}
			if err := c.bookingService.CancelBooking(ctx, bookingID, memberID); err != nil {
				fmt.Println("Booking not found.")
				continue
			}
			fmt.Println("Booking cancelled.")
		case "5":
			return
		}
	}
}

func (c *Console) listOpenSchedules(ctx context.Context) {
	schedules, err := c.bookingService.ListOpenSchedules(ctx)
	if err != nil {
		fail()
		return
	}
	if len(schedules) == 0 {
		fmt.Println("No open classes right now.")
		return
	}

	fmt.Println("\n=== Open Classes ===")
	for _, s := range schedules {
		fmt.Printf("[%d] %s in %s, %s %s-%s (%d/%d booked, %d spots left)\n",
			s.ScheduleID, s.ClassName, s.RoomName, s.DayOfWeek,
			s.StartTime, s.EndTime, s.BookedCount, s.Capacity, s.AvailableSpots)
	}
}

func (c *Console) bookClass(ctx context.Context, memberID int) {
	c.listOpenSchedules(ctx)
	scheduleID, ok := c.promptInt("Schedule ID to book: ")
	if !ok {
		return
	}

	bookingID, err := c.bookingService.BookClass(ctx, memberID, scheduleID)
	if err != nil {
		fmt.Println("Could not book that class. It may be full or no longer offered.")
		return
	}
	fmt.Printf("Booked. Your booking ID is %d.\n", bookingID)
}

func (c *Console) listMyBookings(ctx context.Context, memberID int) {
	bookings, err := c.bookingService.ListMemberBookings(ctx, memberID)
	if err != nil {
		fail()
		return
	}
	if len(bookings) == 0 {
		fmt.Println("You have no bookings.")
		return
	}

	fmt.Println("\n=== My Bookings ===")
	for _, b := range bookings {
		fmt.Printf("[%d] %s, %s %s-%s\n",
			b.BookingID, b.ClassName, b.DayOfWeek, b.StartTime, b.EndTime)
	}
}
