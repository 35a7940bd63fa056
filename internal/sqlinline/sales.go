package sqlinline

const QInsertSale = `--sql 9ca5e12b-bc7a-4490-814b-402a4e26ff07
insert into sales(gift_id, customer_name, customer_email, amount_cents, payment_method,
                  payment_ref, status, notes, created_at, updated_at)
values ($1::bigint, $2::text, $3::text, $4::bigint, $5::text, $6::text, $7::text, $8::text, now(), now())
returning id, created_at, updated_at;
`

const QListSales = `--sql 46eb0fad-bb34-4d97-8a9c-07fc7caa7dc0
select s.id, s.gift_id, s.customer_name, s.customer_email, s.amount_cents, s.payment_method,
       s.payment_ref, s.status, s.notes, s.created_at, s.updated_at,
       g.id, g.name, g.description, g.price_cents, g.image, g.stock, g.created_at, g.updated_at
from sales s
join gifts g on g.id = s.gift_id
order by s.created_at desc;
`

const QSelectSaleByID = `--sql a4407086-bc8b-4334-9606-313c92f1d41f
select s.id, s.gift_id, s.customer_name, s.customer_email, s.amount_cents, s.payment_method,
       s.payment_ref, s.status, s.notes, s.created_at, s.updated_at,
       g.id, g.name, g.description, g.price_cents, g.image, g.stock, g.created_at, g.updated_at
from sales s
join gifts g on g.id = s.gift_id
where s.id = $1::bigint;
`

const QUpdateSaleStatus = `--sql 03794b4e-1b0b-48b0-a5ec-64d9083ab1e6
update sales set status = $2::text, notes = coalesce(nullif($3::text, ''), notes), updated_at = now()
where id = $1::bigint;
`

const QSalesTotals = `--sql 4085c051-7306-4f17-b742-2157d5555831
select count(*), coalesce(sum(amount_cents), 0)
from sales
where status = 'paid';
`

const QSalesByMethod = `--sql d9cd0ed1-9d96-49e4-a78c-be1811993b18
select payment_method, count(*), coalesce(sum(amount_cents), 0)
from sales
where status = 'paid'
group by payment_method
order by count(*) desc;
`

const QSalesByGift = `--sql 394685df-36b8-4a0f-839a-d82c90f28a78
select s.gift_id, g.name, g.description, count(*), coalesce(sum(s.amount_cents), 0)
from sales s
join gifts g on g.id = s.gift_id
where s.status = 'paid'
group by s.gift_id, g.name, g.description
order by count(*) desc;
`
