package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/Nweder/fuel-friends-azure/infra/initializer"
	"github.com/Nweder/fuel-friends-azure/pkg/config"
	"github.com/Nweder/fuel-friends-azure/pkg/dto"
	"github.com/Nweder/fuel-friends-azure/pkg/fuel"
	ledgersvc "github.com/Nweder/fuel-friends-azure/pkg/service/ledger"
)

func main() {
	argsLen := len(os.Args)
	if argsLen < 2 {
		usage()
		return
	}
	cmd := os.Args[1]

	cfg, err := config.Load(".env")
	if err != nil {
		fmt.Println("Failed to load configuration:", err)
		return
	}
	deps, err := initializer.InitializeDependencies(cfg)
	if err != nil {
		fmt.Println("Failed to initialize dependencies:", err)
		return
	}
	svc := ledgersvc.New(deps.Uow, deps.Logger)
	ctx := context.Background()

	switch cmd {
	case "list":
		friends, err := svc.ListFriends(ctx)
		if err != nil {
			fmt.Println("Error listing friends:", err)
			return
		}
		for _, f := range friends {
			printFriend(f)
		}
	case "create":
		if argsLen < 3 {
			fmt.Println("Usage: cli create <name>")
			return
		}
		f, err := svc.CreateFriend(ctx, os.Args[2])
		if err != nil {
			fmt.Println("Error creating friend:", err)
			return
		}
		printFriend(f)
	case "rename":
		if argsLen < 4 {
			fmt.Println("Usage: cli rename <id> <name>")
			return
		}
		id, err := strconv.ParseUint(os.Args[2], 10, 32)
		if err != nil {
			fmt.Println("Invalid friend id:", err)
			return
		}
		f, err := svc.RenameFriend(ctx, uint(id), os.Args[3])
		if err != nil {
			fmt.Println("Error renaming friend:", err)
			return
		}
		printFriend(f)
	case "delete":
		if argsLen < 3 {
			fmt.Println("Usage: cli delete <id>")
			return
		}
		id, err := strconv.ParseUint(os.Args[2], 10, 32)
		if err != nil {
			fmt.Println("Invalid friend id:", err)
			return
		}
		if err := svc.DeleteFriend(ctx, uint(id)); err != nil {
			fmt.Println("Error deleting friend:", err)
			return
		}
		fmt.Printf("Deleted friend %d\n", id)
	case "add":
		if argsLen < 4 {
			fmt.Println("Usage: cli add <id> <liters>")
			return
		}
		id, err := strconv.ParseUint(os.Args[2], 10, 32)
		if err != nil {
			fmt.Println("Invalid friend id:", err)
			return
		}
		liters, err := strconv.ParseFloat(os.Args[3], 64)
		if err != nil {
			fmt.Println("Invalid amount:", err)
			return
		}
		f, err := svc.AddFuel(ctx, uint(id), liters)
		if err != nil {
			fmt.Println("Error adding fuel:", err)
			return
		}
		printFriend(f)
	case "pay":
		if argsLen < 4 {
			fmt.Println("Usage: cli pay <id> <amount>")
			return
		}
		id, err := strconv.ParseUint(os.Args[2], 10, 32)
		if err != nil {
			fmt.Println("Invalid friend id:", err)
			return
		}
		amount, err := strconv.ParseFloat(os.Args[3], 64)
		if err != nil {
			fmt.Println("Invalid amount:", err)
			return
		}
		f, err := svc.Pay(ctx, uint(id), amount)
		if err != nil {
			fmt.Println("Error recording payment:", err)
			return
		}
		printFriend(f)
	case "reset":
		if argsLen < 3 {
			fmt.Println("Usage: cli reset <id>")
			return
		}
		id, err := strconv.ParseUint(os.Args[2], 10, 32)
		if err != nil {
			fmt.Println("Invalid friend id:", err)
			return
		}
		f, err := svc.ResetFriend(ctx, uint(id))
		if err != nil {
			fmt.Println("Error resetting friend:", err)
			return
		}
		printFriend(f)
	case "reset-all":
		if err := svc.ResetAll(ctx); err != nil {
			fmt.Println("Error resetting all friends:", err)
			return
		}
		fmt.Println("All balances reset")
	case "history":
		if argsLen < 3 {
			fmt.Println("Usage: cli history <id>")
			return
		}
		id, err := strconv.ParseUint(os.Args[2], 10, 32)
		if err != nil {
			fmt.Println("Invalid friend id:", err)
			return
		}
		entries, err := svc.History(ctx, uint(id))
		if err != nil {
			fmt.Println("Error listing history:", err)
			return
		}
		for _, tx := range entries {
			fmt.Printf("%s  %-10s %10.2f  %s\n",
				tx.CreatedAt.Format(time.RFC3339), tx.Kind, tx.Amount, tx.Description)
		}
	default:
		fmt.Println("Unknown command:", cmd)
	}
}

func usage() {
	fmt.Println("Usage: cli <command> [arguments]")
	fmt.Println("Commands: list, create <name>, rename <id> <name>, delete <id>,")
	fmt.Println("          add <id> <liters>, pay <id> <amount>, reset <id>, reset-all, history <id>")
}

func printFriend(f *dto.FriendRead) {
	b := fuel.BalanceOf(f.TotalLiters, f.PaidSEK)
	fmt.Printf("#%d %s: %.2f L left (%.2f SEK), paid %.2f SEK\n",
		f.ID, f.Name, b.TotalLiters, b.TotalSEK, b.PaidSEK)
}
