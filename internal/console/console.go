// Package console implements the interactive terminal menus. Every action
// maps 1:1 to a service operation; on failure the menu prints a single
// generic line and returns to the prompt.
package console

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gymdesk/internal/services"
)

type Console struct {
	memberService     services.MemberServiceInterface
	trainerService    services.TrainerServiceInterface
	adminService      services.AdminServiceInterface
	schedulingService services.SchedulingServiceInterface
	bookingService    services.BookingServiceInterface
	dashboardService  services.DashboardServiceInterface

	in *bufio.Reader
}

func New(
	memberService services.MemberServiceInterface,
	trainerService services.TrainerServiceInterface,
	adminService services.AdminServiceInterface,
	schedulingService services.SchedulingServiceInterface,
	bookingService services.BookingServiceInterface,
	dashboardService services.DashboardServiceInterface,
) *Console {
	return &Console{
		memberService:     memberService,
		trainerService:    trainerService,
		adminService:      adminService,
		schedulingService: schedulingService,
		bookingService:    bookingService,
		dashboardService:  dashboardService,
		in:                bufio.NewReader(os.Stdin),
	}
}

// Run drives the top-level menu until the user exits.
func (c *Console) Run(ctx context.Context) {
	for {
		fmt.Println("\n--- FITNESS CLUB SYSTEM ---")
		fmt.Println("1. Member Page")
		fmt.Println("2. Trainer Page")
		fmt.Println("3. Admin Page")
		fmt.Println("4. Exit")

		switch c.prompt("Select Option: ") {
		case "1":
			c.memberPage(ctx)
		case "2":
			c.trainerPage(ctx)
		case "3":
			c.adminPage(ctx)
		case "4":
			fmt.Println("Exiting...")
			return
		}
	}
}

func (c *Console) prompt(label string) string {
	fmt.Print(label)
	line, err := c.in.ReadString('\n')
	if err != nil {
		return ""
	}
	return strings.TrimSpace(line)
}

func (c *Console) promptInt(label string) (int, bool) {
	n, err := strconv.Atoi(c.prompt(label))
	if err != nil {
		fmt.Println("Please enter a number.")
		return 0, false
	}
	return n, true
}

func (c *Console) promptFloat(label string) (float64, bool) {
	f, err := strconv.ParseFloat(c.prompt(label), 64)
	if err != nil {
		fmt.Println("Please enter a number.")
		return 0, false
	}
	return f, true
}

func (c *Console) pause() {
	c.prompt("\nPress Enter to continue...")
}

func fail() {
	fmt.Println("Operation failed. Please try again.")
}
