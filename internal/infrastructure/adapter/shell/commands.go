package shell

import (
	"fmt"
	"strconv"

	"github.com/agskasse/kiosk-ledger/internal/domain/entity"
	errs "github.com/agskasse/kiosk-ledger/internal/domain/error"
)

// command binds a verb to its required argument count, its help text and
// its handler. The help page is generated from this table so it can
// never drift from the implementation.
type command struct {
	verb  string
	argc  int
	usage string
	help  []string
	run   func(i *Interpreter, args []string) ([]string, Action, error)
}

// commands in help-page order. Populated in init so that cmdHelp,
// which renders this table, does not form an initialization cycle.
var commands []command

func init() {
	commands = []command{
		{
			verb: "logout", argc: 0, usage: "logout",
			help: []string{"[Ends the admin session]"},
			run:  cmdLogout,
		},
		{
			verb: "shutdown", argc: 0, usage: "shutdown",
			help: []string{"[Saves everything and closes the program]"},
			run:  cmdShutdown,
		},
		{
			verb: "restart", argc: 0, usage: "restart",
			help: []string{"[Saves everything and restarts the program]"},
			run:  cmdRestart,
		},
		{
			verb: "setpw", argc: 1, usage: "setpw <password>",
			help: []string{"[Sets a new global password]", "<password>=(string)"},
			run:  cmdSetPassword,
		},
		{
			verb: "help", argc: 0, usage: "help",
			help: []string{"[Shows this help page]"},
			run:  cmdHelp,
		},
		{
			verb: "lsusr", argc: 0, usage: "lsusr",
			help: []string{"[Lists all users]"},
			run:  cmdListUsers,
		},
		{
			verb: "addusr", argc: 2, usage: "addusr <name> <role>",
			help: []string{"[Creates a new user]", "<name>=(string)", "<role>=(int)"},
			run:  cmdAddUser,
		},
		{
			verb: "delusr", argc: 1, usage: "delusr <ID>",
			help: []string{"[Deletes the user with the given ID]", "<ID>=(int)"},
			run:  cmdDeleteUser,
		},
		{
			verb: "setrole", argc: 2, usage: "setrole <ID> <role>",
			help: []string{
				"[Sets a new role for a user]",
				"[0=disabled, 1=standard, 2=admin]",
				"<ID>=(int)", "<role>=(int)",
			},
			run: cmdSetRole,
		},
		{
			verb: "lsbvr", argc: 0, usage: "lsbvr",
			help: []string{"[Lists all beverages]"},
			run:  cmdListBeverages,
		},
		{
			verb: "addbvr", argc: 3, usage: "addbvr <name> <price> <barcode>",
			help: []string{
				"[Creates a new beverage]",
				"<name>=(string)", "<price>=(double)", "<barcode>=(int)",
			},
			run: cmdAddBeverage,
		},
		{
			verb: "delbvr", argc: 1, usage: "delbvr <ID>",
			help: []string{"[Deletes the beverage with the given ID]", "<ID>=(int)"},
			run:  cmdDeleteBeverage,
		},
		{
			verb: "setbvrprice", argc: 2, usage: "setbvrprice <ID> <price>",
			help: []string{"[Sets a new price for a beverage]", "<ID>=(int)", "<price>=(double)"},
			run:  cmdSetBeveragePrice,
		},
		{
			verb: "abvro", argc: 2, usage: "abvro <ID> <count>",
			help: []string{
				"[Books the given number of new bottles",
				" onto the given beverage]",
				"<ID>=(int)", "<count>=(int)",
			},
			run: cmdRestock,
		},
		{
			verb: "getstock", argc: 1, usage: "getstock <ID>",
			help: []string{"[Reports the stock of a beverage]", "<ID>=(int)"},
			run:  cmdGetStock,
		},
		{
			verb: "getconsumption", argc: 0, usage: "getconsumption",
			help: []string{
				"[Shows the stock change since the",
				" last restock of each beverage]",
			},
			run: cmdConsumption,
		},
		{
			verb: "select", argc: 1, usage: "select <ID>",
			help: []string{"[Selects the active user for 'buy' and 'topup']", "<ID>=(int)"},
			run:  cmdSelect,
		},
		{
			verb: "buy", argc: 1, usage: "buy <ID>",
			help: []string{"[Purchases one bottle for the active user]", "<ID>=(int)"},
			run:  cmdBuy,
		},
		{
			verb: "topup", argc: 1, usage: "topup <amount>",
			help: []string{"[Deposits money for the active user]", "<amount>=(double)"},
			run:  cmdTopup,
		},
		{
			verb: "history", argc: 1, usage: "history <ID>",
			help: []string{"[Shows all bookings of one user]", "<ID>=(int)"},
			run:  cmdHistory,
		},
		{
			verb: "depositlog", argc: 0, usage: "depositlog",
			help: []string{"[Shows all deposits of all users]"},
			run:  cmdDepositLog,
		},
		{
			verb: "statement", argc: 0, usage: "statement",
			help: []string{"[Shows the current cash balance of the till]"},
			run:  cmdStatement,
		},
		{
			verb: "withdraw", argc: 1, usage: "withdraw <amount>",
			help: []string{
				"[Removes virtual credit from the till after",
				" the real money was taken out for an order]",
				"<amount>=(double)",
			},
			run: cmdWithdraw,
		},
		{
			verb: "cleardeplog", argc: 0, usage: "cleardeplog",
			help: []string{
				"[Clears all previous deposits. Useful after",
				" a cash audit so the next audit does not",
				" re-check old deposits.]",
			},
			run: cmdClearDepositLog,
		},
	}
}

var commandIndex = make(map[string]*command)

func init() {
	for idx := range commands {
		commandIndex[commands[idx].verb] = &commands[idx]
	}
}

// parseID converts a positional id argument; negative values as well as
// non-numbers are rejected here so handlers only see plausible ids.
func parseID(arg string) (int, bool) {
	id, err := strconv.Atoi(arg)
	if err != nil || id < 0 {
		return 0, false
	}
	return id, true
}

func badNumber(arg string) []string {
	return []string{fmt.Sprintf("'%s' is not a valid number...", arg)}
}

func cmdLogout(i *Interpreter, _ []string) ([]string, Action, error) {
	if i.session.SetupPending() && !i.ledger.SetupComplete() {
		return []string{
			"First-time setup is not finished.",
			"Create at least one user ('addusr') and change",
			"the default password ('setpw') before logging out.",
		}, ActionNone, nil
	}
	i.session.lock()
	i.session.Deselect()
	return []string{"Successfully logged out."}, ActionNone, nil
}

func cmdShutdown(i *Interpreter, _ []string) ([]string, Action, error) {
	lines := []string{"Closing the program..."}
	if err := i.ledger.Flush(); err != nil {
		lines = append(lines, "Warning: not all changes could be saved!")
	}
	return lines, ActionShutdown, nil
}

func cmdRestart(i *Interpreter, _ []string) ([]string, Action, error) {
	lines := []string{"Restarting the program..."}
	if err := i.ledger.Flush(); err != nil {
		lines = append(lines, "Warning: not all changes could be saved!")
	}
	return lines, ActionRestart, nil
}

func cmdSetPassword(i *Interpreter, args []string) ([]string, Action, error) {
	if err := i.ledger.ChangePassphrase(args[0]); err != nil {
		return nil, ActionNone, err
	}
	return []string{"The password was changed successfully!"}, ActionNone, nil
}

func cmdHelp(_ *Interpreter, _ []string) ([]string, Action, error) {
	lines := []string{"#### Help page of the kiosk command line ####"}
	for _, cmd := range commands {
		lines = append(lines, cmd.usage)
		for _, h := range cmd.help {
			lines = append(lines, "   "+h)
		}
	}
	lines = append(lines, "############## End of help page #############")
	return lines, ActionNone, nil
}

func cmdListUsers(i *Interpreter, _ []string) ([]string, Action, error) {
	lines := []string{"List of all users:"}
	for id, u := range i.ledger.Users() {
		lines = append(lines, fmt.Sprintf("ID: %d Name: %s", id, u.Name()))
	}
	lines = append(lines, "End of list")
	return lines, ActionNone, nil
}

func cmdAddUser(i *Interpreter, args []string) ([]string, Action, error) {
	role, ok := parseID(args[1])
	if !ok || role > int(entity.RoleAdmin) {
		return []string{"The given role is not valid!"}, ActionNone, nil
	}
	user, err := i.ledger.AddUser(args[0], entity.Role(role))
	if err != nil {
		return nil, ActionNone, err
	}
	return []string{fmt.Sprintf(
		"The new user %s was created and added to the user database.", user.Name(),
	)}, ActionNone, nil
}

func cmdDeleteUser(i *Interpreter, args []string) ([]string, Action, error) {
	id, ok := parseID(args[0])
	if !ok {
		return badNumber(args[0]), ActionNone, nil
	}
	if err := i.ledger.DeleteUser(id); err != nil {
		return nil, ActionNone, err
	}
	// Positional ids shifted; any selection may now point elsewhere.
	i.session.Deselect()
	return []string{"User deleted and databases updated."}, ActionNone, nil
}

func cmdSetRole(i *Interpreter, args []string) ([]string, Action, error) {
	id, okID := parseID(args[0])
	role, okRole := parseID(args[1])
	if !okID || !okRole {
		return []string{"Wrong parameters for 'setrole'..."}, ActionNone, nil
	}
	user, err := i.ledger.SetRole(id, entity.Role(role))
	if err != nil {
		return nil, ActionNone, err
	}
	return []string{
		fmt.Sprintf("User role of %s changed successfully!", user.Name()),
		"Changes saved to the database.",
	}, ActionNone, nil
}

func cmdListBeverages(i *Interpreter, _ []string) ([]string, Action, error) {
	lines := []string{"List of all beverages:"}
	for id, b := range i.ledger.Beverages() {
		line := fmt.Sprintf("ID: %d | %s | %s EUR | %d bottles",
			id, b.Name(), b.PriceString(), b.Stock())
		if b.LowStock() {
			line += " [low stock]"
		}
		lines = append(lines, line)
	}
	lines = append(lines, "End of list")
	return lines, ActionNone, nil
}

func cmdAddBeverage(i *Interpreter, args []string) ([]string, Action, error) {
	barcode, ok := parseID(args[2])
	if !ok {
		return badNumber(args[2]), ActionNone, nil
	}
	if _, err := i.ledger.AddBeverage(args[0], args[1], barcode); err != nil {
		return nil, ActionNone, err
	}
	return []string{"Beverage added and database updated."}, ActionNone, nil
}

func cmdDeleteBeverage(i *Interpreter, args []string) ([]string, Action, error) {
	id, ok := parseID(args[0])
	if !ok {
		return badNumber(args[0]), ActionNone, nil
	}
	if err := i.ledger.DeleteBeverage(id); err != nil {
		return nil, ActionNone, err
	}
	return []string{"Beverage deleted and databases updated."}, ActionNone, nil
}

func cmdSetBeveragePrice(i *Interpreter, args []string) ([]string, Action, error) {
	id, ok := parseID(args[0])
	if !ok {
		return badNumber(args[0]), ActionNone, nil
	}
	if _, err := i.ledger.SetPrice(id, args[1]); err != nil {
		return nil, ActionNone, err
	}
	return []string{"New beverage price saved."}, ActionNone, nil
}

func cmdRestock(i *Interpreter, args []string) ([]string, Action, error) {
	id, okID := parseID(args[0])
	count, err := strconv.Atoi(args[1])
	if !okID || err != nil {
		return []string{"Wrong parameters for 'abvro'..."}, ActionNone, nil
	}
	beverage, rerr := i.ledger.Restock(id, count)
	if rerr != nil {
		return nil, ActionNone, rerr
	}
	return []string{fmt.Sprintf(
		"New stock of %s: %d", beverage.Name(), beverage.Stock(),
	)}, ActionNone, nil
}

func cmdGetStock(i *Interpreter, args []string) ([]string, Action, error) {
	id, ok := parseID(args[0])
	if !ok {
		return badNumber(args[0]), ActionNone, nil
	}
	beverage, err := i.ledger.BeverageAt(id)
	if err != nil {
		return nil, ActionNone, err
	}
	return []string{fmt.Sprintf(
		"%s: %d bottles", beverage.Name(), beverage.Stock(),
	)}, ActionNone, nil
}

func cmdConsumption(i *Interpreter, _ []string) ([]string, Action, error) {
	lines := []string{"|=====Consumption list====|"}
	for _, b := range i.ledger.Beverages() {
		if b.LastRestock() > 0 {
			lines = append(lines, fmt.Sprintf("|%s| %s (%d/%d)",
				consumptionBar(b.Stock(), b.LastRestock()),
				b.Name(), b.Stock(), b.LastRestock()))
		} else {
			lines = append(lines, fmt.Sprintf(
				"No restock recorded for %s yet...", b.Name()))
		}
	}
	lines = append(lines, "|===End of consumption===|")
	return lines, ActionNone, nil
}

func cmdSelect(i *Interpreter, args []string) ([]string, Action, error) {
	id, ok := parseID(args[0])
	if !ok {
		return badNumber(args[0]), ActionNone, nil
	}
	user, err := i.ledger.UserAt(id)
	if err != nil {
		return nil, ActionNone, err
	}
	i.session.SelectUser(id)
	return []string{fmt.Sprintf(
		"%s selected. Balance: %s EUR", user.Name(), user.BalanceString(),
	)}, ActionNone, nil
}

func cmdBuy(i *Interpreter, args []string) ([]string, Action, error) {
	beverageID, ok := parseID(args[0])
	if !ok {
		return badNumber(args[0]), ActionNone, nil
	}
	userID, selected := i.session.ActiveUser()
	if !selected {
		return nil, ActionNone, errs.ErrNoActiveUser
	}
	if err := i.ledger.Purchase(userID, beverageID); err != nil {
		return nil, ActionNone, err
	}
	user, _ := i.ledger.UserAt(userID)
	lines := []string{fmt.Sprintf(
		"Enjoy! Remaining balance: %s EUR", user.BalanceString(),
	)}
	// A purchase ends the selection, matching the kiosk workflow of
	// one bottle per visit.
	i.session.Deselect()
	return lines, ActionNone, nil
}

func cmdTopup(i *Interpreter, args []string) ([]string, Action, error) {
	userID, selected := i.session.ActiveUser()
	if !selected {
		return nil, ActionNone, errs.ErrNoActiveUser
	}
	if err := i.ledger.Deposit(userID, args[0]); err != nil {
		return nil, ActionNone, err
	}
	user, _ := i.ledger.UserAt(userID)
	return []string{fmt.Sprintf(
		"Deposit booked. New balance: %s EUR", user.BalanceString(),
	)}, ActionNone, nil
}

func cmdHistory(i *Interpreter, args []string) ([]string, Action, error) {
	id, ok := parseID(args[0])
	if !ok {
		return badNumber(args[0]), ActionNone, nil
	}
	bookings, err := i.ledger.History(id)
	if err != nil {
		return nil, ActionNone, err
	}
	lines := []string{"|================Booking list================|"}
	lines = append(lines, bookings...)
	lines = append(lines, "|============End of booking list=============|")
	return lines, ActionNone, nil
}

func cmdDepositLog(i *Interpreter, _ []string) ([]string, Action, error) {
	deposits, err := i.ledger.DepositLines()
	if err != nil {
		return nil, ActionNone, err
	}
	lines := []string{"|===============Deposit list===============|"}
	lines = append(lines, deposits...)
	lines = append(lines, "|===========End of deposit list============|")
	return lines, ActionNone, nil
}

func cmdStatement(i *Interpreter, _ []string) ([]string, Action, error) {
	return []string{fmt.Sprintf(
		"Current balance of the till: %s EUR",
		i.ledger.System().CashBalanceString(),
	)}, ActionNone, nil
}

func cmdWithdraw(i *Interpreter, args []string) ([]string, Action, error) {
	withdrawn, err := i.ledger.WithdrawCash(args[0])
	if err != nil {
		return nil, ActionNone, err
	}
	return []string{
		fmt.Sprintf("%s EUR were withdrawn.", entity.FormatCents(withdrawn)),
		fmt.Sprintf("The till now holds: %s EUR", i.ledger.System().CashBalanceString()),
		"Changes saved to the database.",
		"Do you want to clear the previous deposits?",
		"After a cash audit this is recommended!",
		"Run 'cleardeplog' to do so...",
	}, ActionNone, nil
}

func cmdClearDepositLog(i *Interpreter, _ []string) ([]string, Action, error) {
	if err := i.ledger.ClearDepositLog(); err != nil {
		return nil, ActionNone, err
	}
	return []string{"Previous deposits were cleared!"}, ActionNone, nil
}
